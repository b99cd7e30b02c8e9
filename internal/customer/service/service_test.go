package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	"github.com/neuraq/gasdesk/internal/clock"
	"github.com/neuraq/gasdesk/internal/config"
	"github.com/neuraq/gasdesk/internal/customer/domain"
	"github.com/neuraq/gasdesk/internal/customer/repository"
	"github.com/neuraq/gasdesk/internal/ident"
	"github.com/neuraq/gasdesk/internal/ledgerlock"
	"github.com/neuraq/gasdesk/internal/password"
	saledomain "github.com/neuraq/gasdesk/internal/sale/domain"
	salerepo "github.com/neuraq/gasdesk/internal/sale/repository"
	"github.com/shopspring/decimal"
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

	require.NoError(t, db.AutoMigrate(&domain.Customer{}, &saledomain.Sale{}))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		Config:   config.Config{DeletePIN: "1234"},
		DB:       db,
		Log:      zap.NewNop(),
		Ident:    ident.New(node),
		Clock:    clock.NewFakeClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
		Locker:   ledgerlock.NewLocker(),
		Repo:     repository.Provide(),
		SaleRepo: salerepo.Provide(),
	}).(*Service)

	return svc, db
}

func TestCreateCustomerAssignsSequentialCodes(t *testing.T) {
	svc, _ := newTestService(t)

	first, err := svc.Create(context.Background(), domain.CreateCustomerRequest{
		Name:  "Hotel Pranavam",
		Phone: "9447000001",
	})
	require.NoError(t, err)
	assert.Equal(t, "00001", first.Customer.Code)

	second, err := svc.Create(context.Background(), domain.CreateCustomerRequest{
		Name:  "Malabar Bakes",
		Phone: "9447000002",
	})
	require.NoError(t, err)
	assert.Equal(t, "00002", second.Customer.Code)
}

func TestCreateCustomerReturnsCredentialOnce(t *testing.T) {
	svc, db := newTestService(t)

	resp, err := svc.Create(context.Background(), domain.CreateCustomerRequest{
		Name:  "Hotel Pranavam",
		Phone: "9447000001",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.PortalPassword)

	// Stored hash verifies the plaintext; the plaintext itself is not kept.
	var stored domain.Customer
	require.NoError(t, db.First(&stored, "code = ?", resp.Customer.Code).Error)
	assert.NotEqual(t, resp.PortalPassword, stored.PortalPasswordHash)

	assert.True(t, password.Verify(resp.PortalPassword, stored.PortalPasswordHash))
}

func TestCreateCustomerRequiresNameAndPhone(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Create(context.Background(), domain.CreateCustomerRequest{Phone: "9447000001"})
	assert.ErrorIs(t, err, domain.ErrInvalidName)

	_, err = svc.Create(context.Background(), domain.CreateCustomerRequest{Name: "Hotel Pranavam"})
	assert.ErrorIs(t, err, domain.ErrInvalidPhone)
}

func TestUpdateCustomerKeepsLedgerFields(t *testing.T) {
	svc, db := newTestService(t)

	resp, err := svc.Create(context.Background(), domain.CreateCustomerRequest{
		Name:             "Hotel Pranavam",
		Phone:            "9447000001",
		OpeningBalance:   decimal.NewFromInt(750),
		OpeningGasOnHand: 4,
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), domain.UpdateCustomerRequest{
		ID:        resp.Customer.ID.String(),
		Name:      "Hotel Pranavam Annex",
		Phone:     "9447000099",
		RouteName: "Bazar",
	})
	require.NoError(t, err)

	var stored domain.Customer
	require.NoError(t, db.First(&stored, "id = ?", resp.Customer.ID).Error)
	assert.Equal(t, "Hotel Pranavam Annex", stored.Name)
	assert.True(t, decimal.NewFromInt(750).Equal(stored.CurrentBalance), "profile edits must not touch the ledger")
	assert.Equal(t, 4, stored.CurrentGasOnHand)
}

func TestDeleteCustomerCascadesSales(t *testing.T) {
	svc, db := newTestService(t)

	resp, err := svc.Create(context.Background(), domain.CreateCustomerRequest{
		Name:  "Hotel Pranavam",
		Phone: "9447000001",
	})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&saledomain.Sale{
			ID:           svc.ident.RowID(),
			Code:         fmt.Sprintf("TBG-TEST-%d", i),
			CustomerCode: resp.Customer.Code,
			ProductCode:  "19KG",
			SaleDate:     time.Now().UTC(),
		}).Error)
	}

	err = svc.Delete(context.Background(), domain.DeleteCustomerRequest{
		ID:  resp.Customer.ID.String(),
		PIN: "1234",
	})
	require.NoError(t, err)

	var customers, sales int64
	db.Model(&domain.Customer{}).Count(&customers)
	db.Model(&saledomain.Sale{}).Where("customer_code = ?", resp.Customer.Code).Count(&sales)
	assert.Zero(t, customers)
	assert.Zero(t, sales)
}

func TestDeleteCustomerRejectsWrongPIN(t *testing.T) {
	svc, db := newTestService(t)

	resp, err := svc.Create(context.Background(), domain.CreateCustomerRequest{
		Name:  "Hotel Pranavam",
		Phone: "9447000001",
	})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), domain.DeleteCustomerRequest{
		ID:  resp.Customer.ID.String(),
		PIN: "9999",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPIN)

	var count int64
	db.Model(&domain.Customer{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestListCustomersReturnsTotals(t *testing.T) {
	svc, _ := newTestService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.Create(context.Background(), domain.CreateCustomerRequest{
			Name:             fmt.Sprintf("Customer %d", i),
			Phone:            fmt.Sprintf("944700000%d", i),
			RouteName:        "Bazar",
			OpeningBalance:   decimal.NewFromInt(100),
			OpeningGasOnHand: 2,
		})
		require.NoError(t, err)
	}

	resp, err := svc.List(context.Background(), domain.ListCustomerRequest{RouteName: "Bazar"})
	require.NoError(t, err)

	assert.Len(t, resp.Customers, 3)
	assert.EqualValues(t, 3, resp.Totals.Customers)
	assert.EqualValues(t, 6, resp.Totals.GasOnHand)
	assert.True(t, decimal.NewFromInt(300).Equal(resp.Totals.TotalBalance))
}
