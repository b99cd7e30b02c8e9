package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/internal/gasrequest/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, request *domain.GasRequest) error {
	return db.WithContext(ctx).Create(request).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.GasRequest, error) {
	var request domain.GasRequest
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM gas_requests WHERE id = ?`,
		id,
	).Scan(&request).Error
	if err != nil {
		return nil, err
	}
	if request.ID == 0 {
		return nil, nil
	}
	return &request, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, filter domain.ListGasRequestFilter) ([]*domain.GasRequest, error) {
	var requests []*domain.GasRequest
	stmt := db.WithContext(ctx).Model(&domain.GasRequest{})
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}
	if filter.CustomerCode != "" {
		stmt = stmt.Where("customer_code = ?", filter.CustomerCode)
	}
	err := stmt.
		Order("created_at desc, id desc").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *repo) UpdateStatus(ctx context.Context, db *gorm.DB, request *domain.GasRequest) error {
	return db.WithContext(ctx).Exec(
		`UPDATE gas_requests SET status = ?, updated_at = ? WHERE id = ?`,
		request.Status,
		request.UpdatedAt,
		request.ID,
	).Error
}

func (r *repo) CountByStatus(ctx context.Context, db *gorm.DB, status string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.GasRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
