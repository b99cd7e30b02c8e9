package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	StatusPending   = "pending"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// GasRequest is a refill order raised from the customer portal.
type GasRequest struct {
	ID           snowflake.ID `json:"id,string" gorm:"primaryKey"`
	CustomerCode string       `json:"customer_code" gorm:"index;not null"`
	CustomerName string       `json:"customer_name"`
	Phone        string       `json:"phone"`
	Quantity     int          `json:"quantity" gorm:"not null"`
	DeliveryDate *time.Time   `json:"delivery_date"`
	Status       string       `json:"status" gorm:"index;not null;default:pending"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

func (GasRequest) TableName() string {
	return "gas_requests"
}

func ValidStatus(status string) bool {
	switch status {
	case StatusPending, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}
