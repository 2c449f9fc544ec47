package models

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// DateLayout is the wire and storage format of reservation dates.
const DateLayout = "2006-01-02"

// Reservation binds one room and one customer to a check-in/check-out pair (table "reserva").
type Reservation struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	RoomID     uint           `gorm:"column:quarto_id;not null;index" json:"quarto_id"`
	CheckIn    datatypes.Date `gorm:"column:data_checkin;not null" json:"data_checkin"`
	CheckOut   datatypes.Date `gorm:"column:data_checkout;not null" json:"data_checkout"`
	PartySize  int            `gorm:"column:numero_pessoas;not null" json:"numero_pessoas"`
	CustomerID uint           `gorm:"column:cliente_id;not null;index" json:"cliente_id"`

	Room     Room     `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Customer Customer `gorm:"foreignKey:CustomerID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Reservation) TableName() string {
	return "reserva"
}

// NewDate truncates t to its calendar day at local midnight, matching the driver's loc=Local.
func NewDate(t time.Time) datatypes.Date {
	y, m, d := t.Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.Local))
}

// FormatDate renders d as YYYY-MM-DD.
func FormatDate(d datatypes.Date) string {
	return time.Time(d).Format(DateLayout)
}

// Nights is the number of nights between check-in and check-out.
func (r Reservation) Nights() int {
	in, out := time.Time(r.CheckIn), time.Time(r.CheckOut)
	y1, m1, d1 := in.Date()
	y2, m2, d2 := out.Date()
	days := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC).Sub(time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)).Hours() / 24
	return int(math.Round(days))
}

// TotalPrice is Nights times the room's nightly rate. Room must be loaded.
func (r Reservation) TotalPrice() decimal.Decimal {
	rate := decimal.NewFromFloat(r.Room.NightlyRate)
	return rate.Mul(decimal.NewFromInt(int64(r.Nights()))).Round(2)
}
