package model

import "time"

type Activity struct {
	ID            int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:text;not null" json:"name"`
	Description   *string   `gorm:"type:text" json:"description"` // can be nil, pointer
	Location      string    `gorm:"type:text;not null" json:"location"`
	StartDatetime time.Time `gorm:"not null" json:"start_datetime"`
	Price         float64   `gorm:"type:numeric;not null" json:"price"`
	Duration      int       `gorm:"type:integer;not null" json:"duration"`

	TravelID int     `gorm:"not null" json:"travel_id"`
	Travel   *Travel `gorm:"foreignKey:TravelID" json:"travel"`
	CityID   int     `gorm:"not null" json:"city_id"`
	City     *City   `gorm:"foreignKey:CityID" json:"city"`
}

func (Activity) TableName() string {
	return "activities"
}

func (activity Activity) EntityID() int {
	return activity.ID
}
