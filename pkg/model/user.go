package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UUID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid()"`
	Username  string    `gorm:"uniqueIndex"`
	FirstName string
	LastName  string
	Email     string `gorm:"uniqueIndex"`
	Avatar    *string
}
