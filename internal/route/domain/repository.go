package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, route *Route) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Route, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Route, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]Route, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
}
