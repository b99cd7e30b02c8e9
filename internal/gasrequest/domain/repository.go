package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListGasRequestFilter struct {
	Status       string
	CustomerCode string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, request *GasRequest) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*GasRequest, error)
	FindAll(ctx context.Context, db *gorm.DB, filter ListGasRequestFilter) ([]*GasRequest, error)
	UpdateStatus(ctx context.Context, db *gorm.DB, request *GasRequest) error
	CountByStatus(ctx context.Context, db *gorm.DB, status string) (int64, error)
}
