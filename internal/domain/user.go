package domain

import (
	"time"
)

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

type AccountType string

const (
	AccountTypeWorker     AccountType = "worker"
	AccountTypeRestaurant AccountType = "restaurant"
)

type User struct {
	ID           int64       `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	FullName     string      `json:"fullName"`
	Role         Role        `json:"role"`
	AccountType  AccountType `json:"accountType"`
	IsActive     bool        `json:"isActive"`
	CreatedAt    time.Time   `json:"createdAt"`
	Version      int32       `json:"-"`
}
