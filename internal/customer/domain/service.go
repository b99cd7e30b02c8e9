package domain

import (
	"context"
	"errors"

	"github.com/neuraq/gasdesk/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidID    = errors.New("invalid_id")
	ErrInvalidName  = errors.New("invalid_name")
	ErrInvalidPhone = errors.New("invalid_phone")
	ErrInvalidPIN   = errors.New("invalid_pin")
	ErrNotFound     = errors.New("not_found")
	ErrCodeTaken    = errors.New("code_taken")
)

type CreateCustomerRequest struct {
	Name             string          `json:"name"`
	Organization     string          `json:"organization"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	OwnerName        string          `json:"owner_name"`
	OwnerPhone       string          `json:"owner_phone"`
	RouteName        string          `json:"route_name"`
	OpeningBalance   decimal.Decimal `json:"opening_balance"`
	OpeningGasOnHand int             `json:"opening_gas_on_hand"`
}

// CreateCustomerResponse carries the portal password in plaintext.
// Only the hash is stored; this is the single time the credential is
// visible.
type CreateCustomerResponse struct {
	Customer       Customer `json:"customer"`
	PortalPassword string   `json:"portal_password"`
}

type UpdateCustomerRequest struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	OwnerName    string `json:"owner_name"`
	OwnerPhone   string `json:"owner_phone"`
	RouteName    string `json:"route_name"`
}

type ListCustomerRequest struct {
	RouteName string `form:"route_name"`
	Search    string `form:"search"`
	PageToken string `form:"page_token"`
	PageSize  int    `form:"page_size,default=50"`
}

type ListCustomerResponse struct {
	Customers []Customer          `json:"customers"`
	Totals    LedgerTotals        `json:"totals"`
	PageInfo  pagination.PageInfo `json:"page_info"`
}

type GetCustomerRequest struct {
	ID string
}

type DeleteCustomerRequest struct {
	ID  string
	PIN string
}

type Service interface {
	Create(ctx context.Context, req CreateCustomerRequest) (CreateCustomerResponse, error)
	Update(ctx context.Context, req UpdateCustomerRequest) (Customer, error)
	List(ctx context.Context, req ListCustomerRequest) (ListCustomerResponse, error)
	GetByID(ctx context.Context, req GetCustomerRequest) (Customer, error)
	Delete(ctx context.Context, req DeleteCustomerRequest) error
}
