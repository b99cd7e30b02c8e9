package domain

import (
	"context"
	"errors"
)

type CreateRouteRequest struct {
	Code    string
	Name    string
	Remarks string
}

type DeleteRouteRequest struct {
	ID string
}

type Service interface {
	Create(context.Context, CreateRouteRequest) (Route, error)
	List(context.Context) ([]Route, error)
	Delete(context.Context, DeleteRouteRequest) error
}

var (
	ErrInvalidName = errors.New("invalid_name")
	ErrInvalidID   = errors.New("invalid_id")
	ErrNotFound    = errors.New("not_found")
)
