package model

import "time"

type Expense struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Amount      float64   `gorm:"type:numeric;not null" json:"amount"`
	Datetime    time.Time `gorm:"not null" json:"datetime"`

	UserID   int     `gorm:"not null" json:"user_id"`
	User     *User   `gorm:"foreignKey:UserID" json:"-"`
	TravelID int     `gorm:"not null" json:"travel_id"`
	Travel   *Travel `gorm:"foreignKey:TravelID" json:"-"`
}

func (Expense) TableName() string {
	return "expenses"
}

func (expense Expense) EntityID() int {
	return expense.ID
}
