package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `json:"name"`
	Img      string `json:"img"`
	Age      int    `json:"age"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}
