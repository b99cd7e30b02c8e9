package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/neuraq/gasdesk/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidCustomer = errors.New("invalid_customer_code")
	ErrInvalidProduct  = errors.New("invalid_product_code")
	ErrInvalidRoute    = errors.New("invalid_route_code")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidAmount   = errors.New("invalid_amount")
	ErrInvalidPIN      = errors.New("invalid_pin")
	ErrNotFound        = errors.New("not_found")
)

// EmptyQuantityError rejects a return of more empty cylinders than the
// customer is currently holding.
type EmptyQuantityError struct {
	Requested int
	OnHand    int
}

func (e *EmptyQuantityError) Error() string {
	return fmt.Sprintf("empty quantity %d exceeds gas on hand %d", e.Requested, e.OnHand)
}

type CreateSaleRequest struct {
	CustomerCode   string          `json:"customer_code"`
	ProductCode    string          `json:"product_code"`
	RouteCode      string          `json:"route_code"`
	SalesQuantity  int             `json:"sales_quantity"`
	EmptyQuantity  int             `json:"empty_quantity"`
	AmountReceived decimal.Decimal `json:"amount_received"`
	CustomPrice    decimal.Decimal `json:"custom_price"`
	SaleDate       *time.Time      `json:"sale_date"`
}

type UpdateSaleRequest struct {
	ID              string          `json:"id"`
	CustomerCode    string          `json:"customer_code"`
	ProductCode     string          `json:"product_code"`
	SalesQuantity   int             `json:"sales_quantity"`
	EmptyQuantity   int             `json:"empty_quantity"`
	AmountReceived  decimal.Decimal `json:"amount_received"`
	CustomPrice     decimal.Decimal `json:"custom_price"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	SaleDate        *time.Time      `json:"sale_date"`
}

type DeleteSaleRequest struct {
	ID  string
	PIN string
}

type GetSaleRequest struct {
	ID string
}

type ListSaleRequest struct {
	CustomerCode string `form:"customer_code"`
	RouteName    string `form:"route_name"`
	Search       string `form:"search"`
	DateFrom     *time.Time
	DateTo       *time.Time
	PageToken    string `form:"page_token"`
	PageSize     int    `form:"page_size,default=50"`
}

type ListSaleResponse struct {
	Sales    []Sale              `json:"sales"`
	PageInfo pagination.PageInfo `json:"page_info"`
}

type SummaryRequest struct {
	RouteName string
	DateFrom  *time.Time
	DateTo    *time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateSaleRequest) (Sale, error)
	Update(ctx context.Context, req UpdateSaleRequest) (Sale, error)
	Delete(ctx context.Context, req DeleteSaleRequest) error
	GetByID(ctx context.Context, req GetSaleRequest) (Sale, error)
	List(ctx context.Context, req ListSaleRequest) (ListSaleResponse, error)
	Summarize(ctx context.Context, req SummaryRequest) (Summary, error)
}
