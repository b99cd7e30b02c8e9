package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/shopspring/decimal"
)

// Sale is one ledger entry. Customer, product and route fields are
// copied at write time so receipts and history keep rendering after the
// source rows change or disappear.
type Sale struct {
	ID   snowflake.ID `json:"id,string" gorm:"primaryKey"`
	Code string       `json:"code" gorm:"uniqueIndex;not null"`

	CustomerCode    string `json:"customer_code" gorm:"index;not null"`
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	RouteCode       string `json:"route_code" gorm:"index;not null"`
	RouteName       string `json:"route_name" gorm:"index"`

	ProductCode string `json:"product_code" gorm:"index;not null"`
	ProductName string `json:"product_name"`

	SalesQuantity int `json:"sales_quantity" gorm:"not null"`
	EmptyQuantity int `json:"empty_quantity" gorm:"not null"`

	BaseProductPrice    decimal.Decimal `json:"base_product_price" gorm:"type:numeric(14,2);not null"`
	ProductPrice        decimal.Decimal `json:"product_price" gorm:"type:numeric(14,2);not null"`
	IsCustomPrice       bool            `json:"is_custom_price"`
	TodayCredit         decimal.Decimal `json:"today_credit" gorm:"type:numeric(14,2);not null"`
	TotalAmountReceived decimal.Decimal `json:"total_amount_received" gorm:"type:numeric(14,2);not null"`
	PreviousBalance     decimal.Decimal `json:"previous_balance" gorm:"type:numeric(14,2);not null"`
	TotalBalance        decimal.Decimal `json:"total_balance" gorm:"type:numeric(14,2);not null"`

	SaleDate  time.Time `json:"sale_date" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Sale) TableName() string {
	return "sales"
}

// Summary aggregates ledger entries over a date range.
type Summary struct {
	Sales         int64           `json:"sales"`
	CylindersSold int64           `json:"cylinders_sold"`
	EmptiesTaken  int64           `json:"empties_taken"`
	TotalCredit   decimal.Decimal `json:"total_credit"`
	TotalReceived decimal.Decimal `json:"total_received"`
}
