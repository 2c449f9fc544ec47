package models

// Room is a bookable hotel room (table "quarto").
// Vacant is owned by the reservation flow: it is false while a reservation occupies the room.
type Room struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Number      int     `gorm:"column:numero;not null;uniqueIndex" json:"numero"`
	MaxCapacity int     `gorm:"column:capacidade_maxima;not null" json:"capacidade_maxima"`
	NightlyRate float64 `gorm:"column:valor_diaria;not null" json:"valor_diaria"`
	Vacant      bool    `gorm:"column:vago;not null" json:"vago"`
}

func (Room) TableName() string {
	return "quarto"
}
