package model

import "time"

const TableAdminCredentials = "admin_credentials"

// Single-row table with the dashboard login
type AdminCredentials struct {
	Id        int       `gorm:"primaryKey" json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (AdminCredentials) TableName() string {
	return TableAdminCredentials
}
