package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/internal/route/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, route *domain.Route) error {
	return db.WithContext(ctx).Create(route).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Route, error) {
	var route domain.Route
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, remarks, created_at FROM routes WHERE id = ?`, id,
	).Scan(&route).Error
	if err != nil {
		return nil, err
	}
	if route.ID == 0 {
		return nil, nil
	}
	return &route, nil
}

// FindByCode resolves a route by its business code. Codes are not unique;
// the lowest row id wins.
func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.Route, error) {
	var route domain.Route
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, remarks, created_at FROM routes WHERE code = ? ORDER BY id ASC LIMIT 1`, code,
	).Scan(&route).Error
	if err != nil {
		return nil, err
	}
	if route.ID == 0 {
		return nil, nil
	}
	return &route, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB) ([]domain.Route, error) {
	var routes []domain.Route
	err := db.WithContext(ctx).
		Model(&domain.Route{}).
		Order("created_at asc, id asc").
		Find(&routes).Error
	if err != nil {
		return nil, err
	}
	return routes, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Delete(&domain.Route{}, "id = ?", id).Error
}
