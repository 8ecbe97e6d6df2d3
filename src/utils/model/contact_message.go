package model

import "time"

const TableContactMessages = "contact_messages"

type ContactMessage struct {
	Id        int       `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (ContactMessage) TableName() string {
	return TableContactMessages
}
