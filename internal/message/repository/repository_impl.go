package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/internal/message/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, message *domain.Message) error {
	return db.WithContext(ctx).Create(message).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Message, error) {
	var message domain.Message
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM messages WHERE id = ?`,
		id,
	).Scan(&message).Error
	if err != nil {
		return nil, err
	}
	if message.ID == 0 {
		return nil, nil
	}
	return &message, nil
}

func (r *repo) FindAll(ctx context.Context, db *gorm.DB, filter domain.ListMessageFilter) ([]*domain.Message, error) {
	var messages []*domain.Message
	stmt := db.WithContext(ctx).Model(&domain.Message{})
	if filter.Unread != nil {
		stmt = stmt.Where("is_read = ?", !*filter.Unread)
	}
	if filter.CustomerCode != "" {
		stmt = stmt.Where("customer_code = ?", filter.CustomerCode)
	}
	err := stmt.
		Order("created_at desc, id desc").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *repo) MarkRead(ctx context.Context, db *gorm.DB, message *domain.Message) error {
	return db.WithContext(ctx).Exec(
		`UPDATE messages SET is_read = ?, updated_at = ? WHERE id = ?`,
		message.IsRead,
		message.UpdatedAt,
		message.ID,
	).Error
}

func (r *repo) CountUnread(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&domain.Message{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return count, err
}
