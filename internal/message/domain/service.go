package domain

import (
	"context"
	"errors"
)

var (
	ErrInvalidID       = errors.New("invalid_id")
	ErrInvalidCustomer = errors.New("invalid_customer_code")
	ErrInvalidBody     = errors.New("invalid_body")
	ErrNotFound        = errors.New("not_found")
)

type CreateMessageRequest struct {
	CustomerCode string `json:"customer_code"`
	Body         string `json:"body"`
}

type ListMessageRequest struct {
	Unread       *bool  `form:"unread"`
	CustomerCode string `form:"customer_code"`
}

type MarkReadRequest struct {
	ID string
}

type Service interface {
	Create(ctx context.Context, req CreateMessageRequest) (Message, error)
	List(ctx context.Context, req ListMessageRequest) ([]Message, error)
	MarkRead(ctx context.Context, req MarkReadRequest) (Message, error)
}
