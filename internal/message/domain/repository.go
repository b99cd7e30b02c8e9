package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListMessageFilter struct {
	// Unread of nil lists everything, true only unread, false only read.
	Unread       *bool
	CustomerCode string
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, message *Message) error
	FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*Message, error)
	FindAll(ctx context.Context, db *gorm.DB, filter ListMessageFilter) ([]*Message, error)
	MarkRead(ctx context.Context, db *gorm.DB, message *Message) error
	CountUnread(ctx context.Context, db *gorm.DB) (int64, error)
}
