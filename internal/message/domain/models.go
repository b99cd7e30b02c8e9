package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Message is a note left by a customer through the portal.
type Message struct {
	ID           snowflake.ID `json:"id,string" gorm:"primaryKey"`
	CustomerCode string       `json:"customer_code" gorm:"index;not null"`
	CustomerName string       `json:"customer_name"`
	Phone        string       `json:"phone"`
	Body         string       `json:"body" gorm:"type:text;not null"`
	IsRead       bool         `json:"is_read" gorm:"index;not null;default:false"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (Message) TableName() string {
	return "messages"
}
