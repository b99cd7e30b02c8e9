package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListSaleFilter struct {
	CustomerCode string
	RouteName    string
	Search       string
	DateFrom     *time.Time
	DateTo       *time.Time
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, sale *Sale) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Sale, error)
	Update(ctx context.Context, db *gorm.DB, sale *Sale) error
	List(ctx context.Context, db *gorm.DB, filter ListSaleFilter, page pagination.Pagination) ([]*Sale, error)
	Summarize(ctx context.Context, db *gorm.DB, filter ListSaleFilter) (Summary, error)
	Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error
	DeleteByCustomerCode(ctx context.Context, db *gorm.DB, code string) error
}
