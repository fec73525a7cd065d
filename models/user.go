package models

import (
	"fmt"
	"strings"
	"time"
)

// Role defines the two account kinds in the system. There is no third
// role; any dispatch on Role must be an exhaustive switch.
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSeller   Role = "SELLER"
)

// ParseRole converts a raw string into a Role, case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(s)) {
	case RoleCustomer:
		return RoleCustomer, nil
	case RoleSeller:
		return RoleSeller, nil
	}
	return "", fmt.Errorf("invalid role: %s", s)
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	LastLogin    time.Time `json:"last_login"`
}
