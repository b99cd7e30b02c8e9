package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidCustomer = errors.New("invalid_customer_code")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidStatus   = errors.New("invalid_status")
	ErrNotFound        = errors.New("not_found")
)

type CreateGasRequestRequest struct {
	CustomerCode string     `json:"customer_code"`
	Quantity     int        `json:"quantity"`
	DeliveryDate *time.Time `json:"delivery_date"`
}

type UpdateGasRequestStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ListGasRequestRequest struct {
	Status       string `form:"status"`
	CustomerCode string `form:"customer_code"`
}

type Service interface {
	Create(ctx context.Context, req CreateGasRequestRequest) (GasRequest, error)
	List(ctx context.Context, req ListGasRequestRequest) ([]GasRequest, error)
	UpdateStatus(ctx context.Context, req UpdateGasRequestStatusRequest) (GasRequest, error)
}
