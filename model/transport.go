package model

import "time"

type Transport struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Type          string    `gorm:"type:text;not null" json:"type"`
	Company       string    `gorm:"type:text;not null" json:"company"`
	Price         float64   `gorm:"type:numeric;not null" json:"price"`
	StartDatetime time.Time `gorm:"not null" json:"start_datetime"`
	StartLocation string    `gorm:"type:text;not null" json:"start_location"`
	EndDatetime   time.Time `gorm:"not null" json:"end_datetime"`
	EndLocation   string    `gorm:"type:text;not null" json:"end_location"`

	TravelID    int     `gorm:"not null" json:"travel_id"`
	Travel      *Travel `gorm:"foreignKey:TravelID" json:"-"`
	StartCityID int     `gorm:"not null" json:"start_city_id"`
	StartCity   *City   `gorm:"foreignKey:StartCityID" json:"start_city"`
	EndCityID   int     `gorm:"not null" json:"end_city_id"`
	EndCity     *City   `gorm:"foreignKey:EndCityID" json:"end_city"`
}

func (Transport) TableName() string {
	return "transports"
}

func (transport Transport) EntityID() int {
	return transport.ID
}
