// Package domain contains persistence models for delivery routes.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Route is a delivery area label attached to customers and sales. Nothing
// references it by key, so deleting a route leaves existing labels intact.
type Route struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	Code      string       `gorm:"not null;index" json:"code"`
	Name      string       `gorm:"not null" json:"name"`
	Remarks   string       `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Route) TableName() string { return "routes" }
