package model

type Travel struct {
	ID          int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"` // can be nil, pointer
	StartDate   string  `gorm:"not null" json:"start_date"`
	EndDate     string  `gorm:"not null" json:"end_date"`

	Users          []User          `gorm:"many2many:users_travels;constraint:OnDelete:CASCADE" json:"users"`
	Accommodations []Accommodation `gorm:"foreignKey:TravelID" json:"-"`
	Transports     []Transport     `gorm:"foreignKey:TravelID" json:"-"`
	Activities     []Activity      `gorm:"foreignKey:TravelID" json:"-"`
	Expenses       []Expense       `gorm:"foreignKey:TravelID" json:"-"`
}

func (Travel) TableName() string {
	return "travels"
}

func (travel Travel) EntityID() int {
	return travel.ID
}
