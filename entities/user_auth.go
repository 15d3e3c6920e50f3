package entities

import (
	"time"
)

// UserAuth maps the user_auth table. PhoneNumber is the business key; its
// uniqueness is enforced by the signup pre-check, not by a DB constraint.
type UserAuth struct {
	Seq         uint      `gorm:"primaryKey;autoIncrement" json:"seq"`
	PhoneNumber string    `gorm:"type:varchar(200);not null" json:"phone_number"`
	Password    string    `gorm:"type:varchar(500);not null" json:"password"`
	Timestamp   time.Time `gorm:"not null" json:"timestamp"`
}

func (UserAuth) TableName() string {
	return "user_auth"
}
