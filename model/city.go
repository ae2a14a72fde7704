package model

type City struct {
	ID      int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"type:text;not null" json:"name"`
	Country string `gorm:"type:text;not null" json:"country"`
}

func (City) TableName() string {
	return "cities"
}

func (city City) EntityID() int {
	return city.ID
}
