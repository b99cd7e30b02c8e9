package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/pkg/db/pagination"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListCustomerFilter struct {
	RouteName string
	Search    string
}

// LedgerState is the running balance and stock written back to the
// customer row after every sale mutation.
type LedgerState struct {
	Balance          decimal.Decimal
	GasOnHand        int
	LastPurchaseDate *time.Time
}

// LedgerDelta is applied in place with SQL arithmetic so concurrent
// edits to unrelated columns cannot clobber the running totals.
type LedgerDelta struct {
	Balance          decimal.Decimal
	GasOnHand        int
	LastPurchaseDate *time.Time
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Customer, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Customer, error)
	List(ctx context.Context, db *gorm.DB, filter ListCustomerFilter, page pagination.Pagination) ([]*Customer, error)
	Totals(ctx context.Context, db *gorm.DB, filter ListCustomerFilter) (LedgerTotals, error)
	MaxCode(ctx context.Context, db *gorm.DB) (string, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, customer *Customer) error
	SetLedger(ctx context.Context, db *gorm.DB, code string, state LedgerState, now time.Time) error
	AdjustLedger(ctx context.Context, db *gorm.DB, code string, delta LedgerDelta, now time.Time) error
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
