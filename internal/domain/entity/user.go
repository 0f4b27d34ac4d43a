package entity

import (
	"time"
)

// User is a single account table shared by admins, doctors and patients;
// Status tells them apart.
type User struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName   string    `gorm:"column:firstname;type:varchar(100)" json:"firstname"`
	LastName    string    `gorm:"column:lastname;type:varchar(100)" json:"lastname"`
	Email       string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PhoneNumber string    `gorm:"column:phonenumber;type:varchar(100)" json:"phonenumber"`
	Gender      string    `gorm:"type:varchar(50)" json:"gender"`
	Password    string    `gorm:"type:varchar(1000);not null" json:"-"`
	Status      Role      `gorm:"type:varchar(50);not null;index" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
