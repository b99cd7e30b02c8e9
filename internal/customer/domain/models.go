package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Customer carries the running ledger alongside the profile. The code
// is the business identifier used by sales and the portal login; row
// ids never leave the admin API.
type Customer struct {
	ID                 snowflake.ID    `json:"id,string" gorm:"primaryKey"`
	Code               string          `json:"code" gorm:"uniqueIndex;not null"`
	Name               string          `json:"name" gorm:"not null"`
	Organization       string          `json:"organization"`
	Phone              string          `json:"phone" gorm:"index"`
	Address            string          `json:"address"`
	OwnerName          string          `json:"owner_name"`
	OwnerPhone         string          `json:"owner_phone"`
	RouteName          string          `json:"route_name" gorm:"index"`
	PortalPasswordHash string          `json:"-" gorm:"not null"`
	CurrentBalance     decimal.Decimal `json:"current_balance" gorm:"type:numeric(14,2);not null"`
	CurrentGasOnHand   int             `json:"current_gas_on_hand" gorm:"not null"`
	LastPurchaseDate   *time.Time      `json:"last_purchase_date"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// LedgerTotals aggregates the running state across a set of customers.
type LedgerTotals struct {
	Customers    int64           `json:"customers"`
	GasOnHand    int64           `json:"gas_on_hand"`
	TotalBalance decimal.Decimal `json:"total_balance"`
}
