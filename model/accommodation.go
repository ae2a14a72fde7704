package model

type Accommodation struct {
	ID           int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Description  *string `gorm:"type:text" json:"description"` // can be nil, pointer
	Location     string  `gorm:"not null" json:"location"`
	Price        float64 `gorm:"type:numeric;not null" json:"price"`
	StartDate    string  `gorm:"not null" json:"start_date"`
	EndDate      string  `gorm:"not null" json:"end_date"`
	Observations *string `gorm:"type:text" json:"observations"` // can be nil, pointer

	TravelID int     `gorm:"not null" json:"travel_id"`
	Travel   *Travel `gorm:"foreignKey:TravelID" json:"travel"`
	CityID   int     `gorm:"not null" json:"city_id"`
	City     *City   `gorm:"foreignKey:CityID" json:"city"`
}

func (Accommodation) TableName() string {
	return "accommodations"
}

func (accommodation Accommodation) EntityID() int {
	return accommodation.ID
}
