package models

import (
	"strings"
	"time"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Username     string `gorm:"size:150;uniqueIndex;not null" json:"username"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FirstName    string `gorm:"size:150" json:"first_name"`
	LastName     string `gorm:"size:150" json:"last_name"`
	Phone        string `gorm:"size:20" json:"telefono"`
	Role         string `gorm:"size:20;default:'cliente'" json:"rol"`
	Active       bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"date_joined"`
	UpdatedAt time.Time `json:"-"`
}

// DisplayName falls back to the username when no real name is set.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.FirstName + " " + u.LastName); name != "" {
		return name
	}
	return u.Username
}
