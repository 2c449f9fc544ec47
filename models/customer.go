// models/customer.go
package models

type Customer struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"column:nome;size:100;not null" json:"nome"`
	LastName  string `gorm:"column:sobrenome;size:100;not null" json:"sobrenome"`
	Phone     string `gorm:"column:celular;size:20;not null;uniqueIndex" json:"celular"`
	Email     string `gorm:"column:email;size:100;not null;uniqueIndex" json:"email"`
}

func (Customer) TableName() string {
	return "cliente"
}
