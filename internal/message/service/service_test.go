package service

import (
	"context"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/neuraq/gasdesk/internal/clock"
	customerdomain "github.com/neuraq/gasdesk/internal/customer/domain"
	customerrepo "github.com/neuraq/gasdesk/internal/customer/repository"
	"github.com/neuraq/gasdesk/internal/ident"
	"github.com/neuraq/gasdesk/internal/message/domain"
	"github.com/neuraq/gasdesk/internal/message/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&customerdomain.Customer{}, &domain.Message{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		DB:           db,
		Log:          zap.NewNop(),
		Ident:        ident.New(node),
		Clock:        clock.NewFakeClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
		Repo:         repository.Provide(),
		CustomerRepo: customerrepo.Provide(),
	}).(*Service)

	return svc, db
}

func seedCustomer(t *testing.T, svc *Service, db *gorm.DB) customerdomain.Customer {
	t.Helper()

	customer := customerdomain.Customer{
		ID:                 svc.ident.RowID(),
		Code:               "00001",
		Name:               "Hotel Pranavam",
		Phone:              "9447000001",
		PortalPasswordHash: "x",
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func TestCreateMessageSnapshotsCustomer(t *testing.T) {
	svc, db := newTestService(t)
	customer := seedCustomer(t, svc, db)

	msg, err := svc.Create(context.Background(), domain.CreateMessageRequest{
		CustomerCode: customer.Code,
		Body:         "Need a refill before Friday",
	})
	require.NoError(t, err)

	assert.Equal(t, customer.Code, msg.CustomerCode)
	assert.Equal(t, customer.Name, msg.CustomerName)
	assert.Equal(t, customer.Phone, msg.Phone)
	assert.False(t, msg.IsRead)
}

func TestCreateMessageUnknownCustomer(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateMessageRequest{
		CustomerCode: "99999",
		Body:         "hello",
	})
	assert.ErrorIs(t, err, customerdomain.ErrNotFound)
}

func TestCreateMessageRequiresBody(t *testing.T) {
	svc, db := newTestService(t)
	customer := seedCustomer(t, svc, db)

	_, err := svc.Create(context.Background(), domain.CreateMessageRequest{
		CustomerCode: customer.Code,
		Body:         "   ",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidBody)
}

func TestMarkReadIsIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	customer := seedCustomer(t, svc, db)

	msg, err := svc.Create(context.Background(), domain.CreateMessageRequest{
		CustomerCode: customer.Code,
		Body:         "please call back",
	})
	require.NoError(t, err)

	id := strconv.FormatInt(int64(msg.ID), 10)

	read, err := svc.MarkRead(context.Background(), domain.MarkReadRequest{ID: id})
	require.NoError(t, err)
	assert.True(t, read.IsRead)

	again, err := svc.MarkRead(context.Background(), domain.MarkReadRequest{ID: id})
	require.NoError(t, err)
	assert.True(t, again.IsRead)
}

func TestListMessagesFiltersUnread(t *testing.T) {
	svc, db := newTestService(t)
	customer := seedCustomer(t, svc, db)

	first, err := svc.Create(context.Background(), domain.CreateMessageRequest{
		CustomerCode: customer.Code,
		Body:         "first",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), domain.CreateMessageRequest{
		CustomerCode: customer.Code,
		Body:         "second",
	})
	require.NoError(t, err)

	_, err = svc.MarkRead(context.Background(), domain.MarkReadRequest{
		ID: strconv.FormatInt(int64(first.ID), 10),
	})
	require.NoError(t, err)

	unread := true
	messages, err := svc.List(context.Background(), domain.ListMessageRequest{Unread: &unread})
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "second", messages[0].Body)
}
