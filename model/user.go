package model

type User struct {
	ID    int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"type:text;not null" json:"name"`
	Email string `gorm:"type:text;not null;uniqueIndex" json:"email"`

	Travels  []Travel  `gorm:"many2many:users_travels;constraint:OnDelete:CASCADE" json:"-"`
	Expenses []Expense `gorm:"foreignKey:UserID" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (user User) EntityID() int {
	return user.ID
}
