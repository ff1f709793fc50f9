package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account
type User struct {
	gorm.Model
	Name        string     `json:"name"`
	Email       string     `json:"email" gorm:"uniqueIndex"`
	Password    string     `json:"password,omitempty"`
	LastLoginAt *time.Time `json:"last_login_at"`
	IsDeleted   bool       `gorm:"default:false"`
}
