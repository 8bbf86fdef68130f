package models

import (
	"gorm.io/gorm"
)

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	IsRead  bool   `json:"is_read" gorm:"default:false"`
}
