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
	customerdomain "github.com/neuraq/gasdesk/internal/customer/domain"
	customerrepo "github.com/neuraq/gasdesk/internal/customer/repository"
	"github.com/neuraq/gasdesk/internal/ident"
	"github.com/neuraq/gasdesk/internal/ledgerlock"
	productdomain "github.com/neuraq/gasdesk/internal/product/domain"
	productrepo "github.com/neuraq/gasdesk/internal/product/repository"
	routedomain "github.com/neuraq/gasdesk/internal/route/domain"
	routerepo "github.com/neuraq/gasdesk/internal/route/repository"
	"github.com/neuraq/gasdesk/internal/sale/domain"
	salerepo "github.com/neuraq/gasdesk/internal/sale/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	db  *gorm.DB
	svc *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&customerdomain.Customer{},
		&productdomain.Product{},
		&routedomain.Route{},
		&domain.Sale{},
	))

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)

	svc := New(Params{
		Config:       config.Config{DeletePIN: "1234"},
		DB:           db,
		Log:          zap.NewNop(),
		Ident:        ident.New(node),
		Clock:        clock.NewFakeClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)),
		Locker:       ledgerlock.NewLocker(),
		Repo:         salerepo.Provide(),
		CustomerRepo: customerrepo.Provide(),
		ProductRepo:  productrepo.Provide(),
		RouteRepo:    routerepo.Provide(),
	}).(*Service)

	return &fixture{db: db, svc: svc}
}

func (f *fixture) seedCustomer(t *testing.T, code string, balance int64, gasOnHand int) *customerdomain.Customer {
	t.Helper()

	customer := &customerdomain.Customer{
		ID:                 f.svc.ident.RowID(),
		Code:               code,
		Name:               "Hotel Pranavam",
		Phone:              "9447000000",
		Address:            "Mukkam Bazar",
		RouteName:          "Mukkam",
		PortalPasswordHash: "x",
		CurrentBalance:     decimal.NewFromInt(balance),
		CurrentGasOnHand:   gasOnHand,
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}
	require.NoError(t, f.db.Create(customer).Error)
	return customer
}

func (f *fixture) seedProduct(t *testing.T, code string, price int64) *productdomain.Product {
	t.Helper()

	product := &productdomain.Product{
		ID:        f.svc.ident.RowID(),
		Code:      code,
		Name:      "19kg Commercial",
		Price:     decimal.NewFromInt(price),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.db.Create(product).Error)
	return product
}

func (f *fixture) seedRoute(t *testing.T, code, name string) *routedomain.Route {
	t.Helper()

	route := &routedomain.Route{
		ID:        f.svc.ident.RowID(),
		Code:      code,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, f.db.Create(route).Error)
	return route
}

func (f *fixture) customerByCode(t *testing.T, code string) customerdomain.Customer {
	t.Helper()

	var customer customerdomain.Customer
	require.NoError(t, f.db.First(&customer, "code = ?", code).Error)
	return customer
}

func TestCreateSaleRollsLedgerForward(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  3,
		EmptyQuantity:  2,
		AmountReceived: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(300).Equal(sale.TodayCredit), "credit = 100 * 3")
	assert.True(t, decimal.NewFromInt(500).Equal(sale.PreviousBalance))
	assert.True(t, decimal.NewFromInt(600).Equal(sale.TotalBalance), "500 + 300 - 200")
	assert.False(t, sale.IsCustomPrice)

	customer := f.customerByCode(t, "00001")
	assert.True(t, decimal.NewFromInt(600).Equal(customer.CurrentBalance))
	assert.Equal(t, 11, customer.CurrentGasOnHand, "10 - 2 + 3")
	require.NotNil(t, customer.LastPurchaseDate)
}

func TestCreateSaleStampsRouteFromRouteRow(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 0, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT02", "Kozhikode")

	// The customer lives on "Mukkam"; the selected route wins.
	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:  "00001",
		ProductCode:   "19KG",
		RouteCode:     "RT02",
		SalesQuantity: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, "RT02", sale.RouteCode)
	assert.Equal(t, "Kozhikode", sale.RouteName)
}

func TestCreateSaleUnknownRouteAborts(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)

	var routes int64
	f.db.Model(&routedomain.Route{}).Count(&routes)
	require.Zero(t, routes)

	_, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "GHOST",
		SalesQuantity:  3,
		EmptyQuantity:  2,
		AmountReceived: decimal.NewFromInt(200),
	})
	assert.ErrorIs(t, err, routedomain.ErrNotFound)

	var count int64
	f.db.Model(&domain.Sale{}).Count(&count)
	assert.Zero(t, count, "rejected entry must not be written")

	customer := f.customerByCode(t, "00001")
	assert.True(t, decimal.NewFromInt(500).Equal(customer.CurrentBalance))
	assert.Equal(t, 10, customer.CurrentGasOnHand)
}

func TestCreateSaleRequiresRoute(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:  "00001",
		ProductCode:   "19KG",
		SalesQuantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRoute)
}

func TestCreateSaleCustomPriceOverridesProduct(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  3,
		EmptyQuantity:  2,
		AmountReceived: decimal.NewFromInt(200),
		CustomPrice:    decimal.NewFromInt(150),
	})
	require.NoError(t, err)

	assert.True(t, sale.IsCustomPrice)
	assert.True(t, decimal.NewFromInt(100).Equal(sale.BaseProductPrice))
	assert.True(t, decimal.NewFromInt(450).Equal(sale.TodayCredit), "credit = 150 * 3")
	assert.True(t, decimal.NewFromInt(750).Equal(sale.TotalBalance), "500 + 450 - 200")

	customer := f.customerByCode(t, "00001")
	assert.True(t, decimal.NewFromInt(750).Equal(customer.CurrentBalance))
}

func TestCreateSaleRejectsExcessEmpties(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	_, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  3,
		EmptyQuantity:  12,
		AmountReceived: decimal.NewFromInt(200),
	})

	var qtyErr *domain.EmptyQuantityError
	require.ErrorAs(t, err, &qtyErr)
	assert.Equal(t, 12, qtyErr.Requested)
	assert.Equal(t, 10, qtyErr.OnHand)

	var count int64
	f.db.Model(&domain.Sale{}).Count(&count)
	assert.Zero(t, count, "rejected entry must not be written")

	customer := f.customerByCode(t, "00001")
	assert.True(t, decimal.NewFromInt(500).Equal(customer.CurrentBalance))
	assert.Equal(t, 10, customer.CurrentGasOnHand)
}

func TestCreateSaleRejectsZeroQuantity(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:  "00001",
		ProductCode:   "19KG",
		RouteCode:     "RT01",
		SalesQuantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestCreateSaleUnknownCustomer(t *testing.T) {
	f := newFixture(t)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	_, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:  "99999",
		ProductCode:   "19KG",
		RouteCode:     "RT01",
		SalesQuantity: 1,
	})
	assert.ErrorIs(t, err, customerdomain.ErrNotFound)
}

func TestUpdateSaleAppliesDeltasOnly(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  3,
		EmptyQuantity:  2,
		AmountReceived: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	// Quantity 3 -> 4, received 200 -> 300, keep previous balance.
	updated, err := f.svc.Update(context.Background(), domain.UpdateSaleRequest{
		ID:              sale.ID.String(),
		CustomerCode:    "00001",
		ProductCode:     "19KG",
		SalesQuantity:   4,
		EmptyQuantity:   2,
		AmountReceived:  decimal.NewFromInt(300),
		PreviousBalance: sale.PreviousBalance,
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(400).Equal(updated.TodayCredit))
	assert.True(t, decimal.NewFromInt(600).Equal(updated.TotalBalance), "500 + 400 - 300")

	// Ledger moves by the diffs: balance 600 + (100 - 100), gas 11 + 1.
	customer := f.customerByCode(t, "00001")
	assert.True(t, decimal.NewFromInt(600).Equal(customer.CurrentBalance))
	assert.Equal(t, 12, customer.CurrentGasOnHand)
}

func TestUpdateSaleReassignsProduct(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	domestic := f.seedProduct(t, "14KG", 200)
	require.NoError(t, f.db.Model(&productdomain.Product{}).
		Where("code = ?", "14KG").
		Update("name", "14.2kg Domestic").Error)

	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  3,
		EmptyQuantity:  2,
		AmountReceived: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	// Entry was booked against the wrong cylinder type.
	updated, err := f.svc.Update(context.Background(), domain.UpdateSaleRequest{
		ID:              sale.ID.String(),
		CustomerCode:    "00001",
		ProductCode:     "14KG",
		SalesQuantity:   3,
		EmptyQuantity:   2,
		AmountReceived:  decimal.NewFromInt(200),
		PreviousBalance: sale.PreviousBalance,
	})
	require.NoError(t, err)

	assert.Equal(t, "14KG", updated.ProductCode)
	assert.Equal(t, "14.2kg Domestic", updated.ProductName)
	assert.True(t, domestic.Price.Equal(updated.BaseProductPrice))
	assert.True(t, decimal.NewFromInt(600).Equal(updated.TodayCredit), "credit = 200 * 3")
	assert.True(t, decimal.NewFromInt(900).Equal(updated.TotalBalance), "500 + 600 - 200")

	// Credit grew by 300, so the running balance moves 600 -> 900.
	customer := f.customerByCode(t, "00001")
	assert.True(t, decimal.NewFromInt(900).Equal(customer.CurrentBalance))
	assert.Equal(t, 11, customer.CurrentGasOnHand)
}

func TestUpdateSaleUnknownProductAborts(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  3,
		EmptyQuantity:  2,
		AmountReceived: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	_, err = f.svc.Update(context.Background(), domain.UpdateSaleRequest{
		ID:              sale.ID.String(),
		CustomerCode:    "00001",
		ProductCode:     "NOPE",
		SalesQuantity:   5,
		EmptyQuantity:   2,
		AmountReceived:  decimal.NewFromInt(200),
		PreviousBalance: sale.PreviousBalance,
	})
	assert.ErrorIs(t, err, productdomain.ErrNotFound)

	unchanged, err := f.svc.GetByID(context.Background(), domain.GetSaleRequest{ID: sale.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, 3, unchanged.SalesQuantity)
	assert.Equal(t, "19KG", unchanged.ProductCode)
}

func TestUpdateSaleReassignsCustomer(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedCustomer(t, "00002", 100, 5)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	require.NoError(t, f.db.Model(&customerdomain.Customer{}).
		Where("code = ?", "00002").
		Update("name", "Arafa Stores").Error)

	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  3,
		EmptyQuantity:  2,
		AmountReceived: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	// Reassign the entry; nothing else changes, so the delta is zero.
	updated, err := f.svc.Update(context.Background(), domain.UpdateSaleRequest{
		ID:              sale.ID.String(),
		CustomerCode:    "00002",
		ProductCode:     "19KG",
		SalesQuantity:   3,
		EmptyQuantity:   2,
		AmountReceived:  decimal.NewFromInt(200),
		PreviousBalance: sale.PreviousBalance,
	})
	require.NoError(t, err)

	assert.Equal(t, "00002", updated.CustomerCode)
	assert.Equal(t, "Arafa Stores", updated.CustomerName)

	target := f.customerByCode(t, "00002")
	assert.True(t, decimal.NewFromInt(100).Equal(target.CurrentBalance))
	assert.Equal(t, 5, target.CurrentGasOnHand)

	original := f.customerByCode(t, "00001")
	assert.True(t, decimal.NewFromInt(600).Equal(original.CurrentBalance), "original contribution stays put")
	assert.Equal(t, 11, original.CurrentGasOnHand)
}

func TestUpdateSaleNoChangeIsZeroDelta(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  3,
		EmptyQuantity:  2,
		AmountReceived: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	before := f.customerByCode(t, "00001")

	_, err = f.svc.Update(context.Background(), domain.UpdateSaleRequest{
		ID:              sale.ID.String(),
		CustomerCode:    sale.CustomerCode,
		ProductCode:     sale.ProductCode,
		SalesQuantity:   sale.SalesQuantity,
		EmptyQuantity:   sale.EmptyQuantity,
		AmountReceived:  sale.TotalAmountReceived,
		PreviousBalance: sale.PreviousBalance,
	})
	require.NoError(t, err)

	after := f.customerByCode(t, "00001")
	assert.True(t, before.CurrentBalance.Equal(after.CurrentBalance))
	assert.Equal(t, before.CurrentGasOnHand, after.CurrentGasOnHand)
}

func TestUpdateSaleEditedPreviousBalanceRecomputesEntry(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  3,
		EmptyQuantity:  2,
		AmountReceived: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	// Operator corrects the opening balance on the entry itself.
	updated, err := f.svc.Update(context.Background(), domain.UpdateSaleRequest{
		ID:              sale.ID.String(),
		CustomerCode:    "00001",
		ProductCode:     "19KG",
		SalesQuantity:   3,
		EmptyQuantity:   2,
		AmountReceived:  decimal.NewFromInt(200),
		PreviousBalance: decimal.NewFromInt(900),
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(1000).Equal(updated.TotalBalance), "900 + 300 - 200")

	// The running ledger only moves by diffs; none changed here.
	customer := f.customerByCode(t, "00001")
	assert.True(t, decimal.NewFromInt(600).Equal(customer.CurrentBalance))
}

func TestUpdateSaleMissingCustomerStillRewritesEntry(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  3,
		EmptyQuantity:  2,
		AmountReceived: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	require.NoError(t, f.db.Exec(`DELETE FROM customers WHERE code = ?`, "00001").Error)

	updated, err := f.svc.Update(context.Background(), domain.UpdateSaleRequest{
		ID:              sale.ID.String(),
		CustomerCode:    "00001",
		ProductCode:     "19KG",
		SalesQuantity:   5,
		EmptyQuantity:   2,
		AmountReceived:  decimal.NewFromInt(200),
		PreviousBalance: sale.PreviousBalance,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.SalesQuantity)
	assert.True(t, decimal.NewFromInt(800).Equal(updated.TotalBalance), "500 + 500 - 200")
}

func TestDeleteSaleReversesLedger(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  3,
		EmptyQuantity:  2,
		AmountReceived: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), domain.DeleteSaleRequest{
		ID:  sale.ID.String(),
		PIN: "1234",
	})
	require.NoError(t, err)

	customer := f.customerByCode(t, "00001")
	assert.True(t, decimal.NewFromInt(500).Equal(customer.CurrentBalance), "create then delete restores the balance")
	assert.Equal(t, 10, customer.CurrentGasOnHand)

	var count int64
	f.db.Model(&domain.Sale{}).Count(&count)
	assert.Zero(t, count)
}

func TestDeleteSaleRejectsWrongPIN(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 500, 10)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	sale, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
		CustomerCode:   "00001",
		ProductCode:    "19KG",
		RouteCode:      "RT01",
		SalesQuantity:  1,
		AmountReceived: decimal.NewFromInt(0),
	})
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), domain.DeleteSaleRequest{
		ID:  sale.ID.String(),
		PIN: "0000",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPIN)

	var count int64
	f.db.Model(&domain.Sale{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestConcurrentCreatesSerializePerCustomer(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 0, 100)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	const writers = 8
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func() {
			_, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
				CustomerCode:   "00001",
				ProductCode:    "19KG",
				RouteCode:      "RT01",
				SalesQuantity:  1,
				EmptyQuantity:  1,
				AmountReceived: decimal.NewFromInt(50),
			})
			errs <- err
		}()
	}
	for i := 0; i < writers; i++ {
		require.NoError(t, <-errs)
	}

	// Each entry adds 100 credit and takes 50, net +50 per sale.
	customer := f.customerByCode(t, "00001")
	assert.True(t, decimal.NewFromInt(50*writers).Equal(customer.CurrentBalance), customer.CurrentBalance.String())
	assert.Equal(t, 100, customer.CurrentGasOnHand, "each sale swaps one empty for one full")
}

func TestSummarizeAggregatesRange(t *testing.T) {
	f := newFixture(t)
	f.seedCustomer(t, "00001", 0, 50)
	f.seedProduct(t, "19KG", 100)
	f.seedRoute(t, "RT01", "Mukkam")

	for i := 0; i < 3; i++ {
		_, err := f.svc.Create(context.Background(), domain.CreateSaleRequest{
			CustomerCode:   "00001",
			ProductCode:    "19KG",
			RouteCode:      "RT01",
			SalesQuantity:  2,
			EmptyQuantity:  1,
			AmountReceived: decimal.NewFromInt(150),
		})
		require.NoError(t, err)
	}

	summary, err := f.svc.Summarize(context.Background(), domain.SummaryRequest{})
	require.NoError(t, err)

	assert.EqualValues(t, 3, summary.Sales)
	assert.EqualValues(t, 6, summary.CylindersSold)
	assert.EqualValues(t, 3, summary.EmptiesTaken)
	assert.True(t, decimal.NewFromInt(600).Equal(summary.TotalCredit))
	assert.True(t, decimal.NewFromInt(450).Equal(summary.TotalReceived))
}
