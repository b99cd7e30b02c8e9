package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/internal/clock"
	"github.com/neuraq/gasdesk/internal/config"
	customerdomain "github.com/neuraq/gasdesk/internal/customer/domain"
	"github.com/neuraq/gasdesk/internal/ident"
	"github.com/neuraq/gasdesk/internal/ledgerlock"
	productdomain "github.com/neuraq/gasdesk/internal/product/domain"
	routedomain "github.com/neuraq/gasdesk/internal/route/domain"
	"github.com/neuraq/gasdesk/internal/sale/domain"
	"github.com/neuraq/gasdesk/pkg/db/pagination"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	Config       config.Config
	DB           *gorm.DB
	Log          *zap.Logger
	Ident        *ident.Generator
	Clock        clock.Clock
	Locker       *ledgerlock.Locker
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
	ProductRepo  productdomain.Repository
	RouteRepo    routedomain.Repository
}

type Service struct {
	cfg          config.Config
	db           *gorm.DB
	log          *zap.Logger
	ident        *ident.Generator
	clock        clock.Clock
	locker       *ledgerlock.Locker
	repo         domain.Repository
	customerRepo customerdomain.Repository
	productRepo  productdomain.Repository
	routeRepo    routedomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		cfg:          p.Config,
		db:           p.DB,
		log:          p.Log.Named("sale.service"),
		ident:        p.Ident,
		clock:        p.Clock,
		locker:       p.Locker,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
		productRepo:  p.ProductRepo,
		routeRepo:    p.RouteRepo,
	}
}

// Create writes a ledger entry and rolls the customer's balance and
// gas on hand forward in one transaction.
//
//	credit  = price * quantity
//	balance = previous balance + credit - received
//	gas     = gas - empties returned + quantity sold
func (s *Service) Create(ctx context.Context, req domain.CreateSaleRequest) (domain.Sale, error) {
	customerCode := strings.TrimSpace(req.CustomerCode)
	if customerCode == "" {
		return domain.Sale{}, domain.ErrInvalidCustomer
	}
	productCode := strings.TrimSpace(req.ProductCode)
	if productCode == "" {
		return domain.Sale{}, domain.ErrInvalidProduct
	}
	routeCode := strings.TrimSpace(req.RouteCode)
	if routeCode == "" {
		return domain.Sale{}, domain.ErrInvalidRoute
	}
	if req.SalesQuantity < 1 {
		return domain.Sale{}, domain.ErrInvalidQuantity
	}
	if req.EmptyQuantity < 0 || req.AmountReceived.IsNegative() || req.CustomPrice.IsNegative() {
		return domain.Sale{}, domain.ErrInvalidAmount
	}

	release := s.locker.Lock(customerCode)
	defer release()

	var sale domain.Sale
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		customer, err := s.customerRepo.FindByCode(ctx, tx, customerCode)
		if err != nil {
			return err
		}
		if customer == nil {
			return customerdomain.ErrNotFound
		}

		product, err := s.productRepo.FindByCode(ctx, tx, productCode)
		if err != nil {
			return err
		}
		if product == nil {
			return productdomain.ErrNotFound
		}

		route, err := s.routeRepo.FindByCode(ctx, tx, routeCode)
		if err != nil {
			return err
		}
		if route == nil {
			return routedomain.ErrNotFound
		}

		if req.EmptyQuantity > customer.CurrentGasOnHand {
			return &domain.EmptyQuantityError{
				Requested: req.EmptyQuantity,
				OnHand:    customer.CurrentGasOnHand,
			}
		}

		price := product.Price
		isCustom := false
		if req.CustomPrice.IsPositive() {
			price = req.CustomPrice
			isCustom = true
		}

		qty := decimal.NewFromInt(int64(req.SalesQuantity))
		todayCredit := price.Mul(qty)
		previousBalance := customer.CurrentBalance
		totalBalance := previousBalance.Add(todayCredit).Sub(req.AmountReceived)
		gasOnHand := customer.CurrentGasOnHand - req.EmptyQuantity + req.SalesQuantity

		now := s.clock.Now()
		saleDate := now
		if req.SaleDate != nil {
			saleDate = *req.SaleDate
		}

		sale = domain.Sale{
			ID:                  s.ident.RowID(),
			Code:                s.ident.SaleCode(now),
			CustomerCode:        customer.Code,
			CustomerName:        customer.Name,
			CustomerPhone:       customer.Phone,
			CustomerAddress:     customer.Address,
			RouteCode:           route.Code,
			RouteName:           route.Name,
			ProductCode:         product.Code,
			ProductName:         product.Name,
			SalesQuantity:       req.SalesQuantity,
			EmptyQuantity:       req.EmptyQuantity,
			BaseProductPrice:    product.Price,
			ProductPrice:        price,
			IsCustomPrice:       isCustom,
			TodayCredit:         todayCredit,
			TotalAmountReceived: req.AmountReceived,
			PreviousBalance:     previousBalance,
			TotalBalance:        totalBalance,
			SaleDate:            saleDate,
			CreatedAt:           now,
			UpdatedAt:           now,
		}

		if err := s.repo.Insert(ctx, tx, &sale); err != nil {
			return err
		}

		return s.customerRepo.SetLedger(ctx, tx, customer.Code, customerdomain.LedgerState{
			Balance:          totalBalance,
			GasOnHand:        gasOnHand,
			LastPurchaseDate: &saleDate,
		}, now)
	})
	if err != nil {
		return domain.Sale{}, err
	}

	s.log.Info("sale recorded",
		zap.String("code", sale.Code),
		zap.String("customer_code", sale.CustomerCode),
		zap.Int("quantity", sale.SalesQuantity),
		zap.String("total_balance", sale.TotalBalance.String()),
	)
	return sale, nil
}

// Update is a full replacement. Customer and product are re-resolved
// from the request so an entry can be corrected onto a different
// customer or product; the entry recomputes from its own previous
// balance, and only the difference is applied against the ledger of the
// customer the entry now points at. A missing customer leaves the
// ledger untouched but still rewrites the entry.
func (s *Service) Update(ctx context.Context, req domain.UpdateSaleRequest) (domain.Sale, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Sale{}, err
	}
	customerCode := strings.TrimSpace(req.CustomerCode)
	if customerCode == "" {
		return domain.Sale{}, domain.ErrInvalidCustomer
	}
	productCode := strings.TrimSpace(req.ProductCode)
	if productCode == "" {
		return domain.Sale{}, domain.ErrInvalidProduct
	}
	if req.SalesQuantity < 1 {
		return domain.Sale{}, domain.ErrInvalidQuantity
	}
	// PreviousBalance may go negative when the customer is in credit.
	if req.EmptyQuantity < 0 || req.AmountReceived.IsNegative() || req.CustomPrice.IsNegative() {
		return domain.Sale{}, domain.ErrInvalidAmount
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Sale{}, err
	}
	if existing == nil {
		return domain.Sale{}, domain.ErrNotFound
	}

	// The deltas land on the customer the entry will point at after the
	// rewrite, so that is the ledger to serialize on.
	release := s.locker.Lock(customerCode)
	defer release()

	var updated domain.Sale
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sale, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		product, err := s.productRepo.FindByCode(ctx, tx, productCode)
		if err != nil {
			return err
		}
		if product == nil {
			return productdomain.ErrNotFound
		}

		price := product.Price
		isCustom := false
		if req.CustomPrice.IsPositive() {
			price = req.CustomPrice
			isCustom = true
		}

		qty := decimal.NewFromInt(int64(req.SalesQuantity))
		todayCredit := price.Mul(qty)
		totalBalance := req.PreviousBalance.Add(todayCredit).Sub(req.AmountReceived)

		amountDiff := todayCredit.Sub(sale.TodayCredit)
		receivedDiff := req.AmountReceived.Sub(sale.TotalAmountReceived)
		qtyDiff := req.SalesQuantity - sale.SalesQuantity
		emptyDiff := req.EmptyQuantity - sale.EmptyQuantity

		now := s.clock.Now()
		saleDate := sale.SaleDate
		if req.SaleDate != nil {
			saleDate = *req.SaleDate
		}

		customer, err := s.customerRepo.FindByCode(ctx, tx, customerCode)
		if err != nil {
			return err
		}

		sale.CustomerCode = customerCode
		if customer != nil {
			sale.CustomerCode = customer.Code
			sale.CustomerName = customer.Name
			sale.CustomerPhone = customer.Phone
			sale.CustomerAddress = customer.Address
		}
		sale.ProductCode = product.Code
		sale.ProductName = product.Name
		sale.BaseProductPrice = product.Price
		sale.SalesQuantity = req.SalesQuantity
		sale.EmptyQuantity = req.EmptyQuantity
		sale.ProductPrice = price
		sale.IsCustomPrice = isCustom
		sale.TodayCredit = todayCredit
		sale.TotalAmountReceived = req.AmountReceived
		sale.PreviousBalance = req.PreviousBalance
		sale.TotalBalance = totalBalance
		sale.SaleDate = saleDate
		sale.UpdatedAt = now

		if err := s.repo.Update(ctx, tx, sale); err != nil {
			return err
		}

		if customer == nil {
			// Entry outlives its customer; nothing to roll forward.
			updated = *sale
			return nil
		}

		if err := s.customerRepo.AdjustLedger(ctx, tx, customer.Code, customerdomain.LedgerDelta{
			Balance:          amountDiff.Sub(receivedDiff),
			GasOnHand:        qtyDiff - emptyDiff,
			LastPurchaseDate: &saleDate,
		}, now); err != nil {
			return err
		}

		updated = *sale
		return nil
	})
	if err != nil {
		return domain.Sale{}, err
	}

	s.log.Info("sale updated",
		zap.String("code", updated.Code),
		zap.String("customer_code", updated.CustomerCode),
		zap.String("total_balance", updated.TotalBalance.String()),
	)
	return updated, nil
}

// Delete reverses the entry's effect on the ledger and removes it.
func (s *Service) Delete(ctx context.Context, req domain.DeleteSaleRequest) error {
	if subtle.ConstantTimeCompare([]byte(req.PIN), []byte(s.cfg.DeletePIN)) != 1 {
		return domain.ErrInvalidPIN
	}

	id, err := s.parseID(req.ID)
	if err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}

	release := s.locker.Lock(existing.CustomerCode)
	defer release()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sale, err := s.repo.FindByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		customer, err := s.customerRepo.FindByCode(ctx, tx, sale.CustomerCode)
		if err != nil {
			return err
		}
		if customer != nil {
			err = s.customerRepo.AdjustLedger(ctx, tx, customer.Code, customerdomain.LedgerDelta{
				Balance:   sale.TotalAmountReceived.Sub(sale.TodayCredit),
				GasOnHand: sale.EmptyQuantity - sale.SalesQuantity,
			}, s.clock.Now())
			if err != nil {
				return err
			}
		}

		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("sale deleted",
		zap.String("code", existing.Code),
		zap.String("customer_code", existing.CustomerCode),
	)
	return nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetSaleRequest) (domain.Sale, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Sale{}, err
	}

	sale, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Sale{}, err
	}
	if sale == nil {
		return domain.Sale{}, domain.ErrNotFound
	}
	return *sale, nil
}

func (s *Service) List(ctx context.Context, req domain.ListSaleRequest) (domain.ListSaleResponse, error) {
	filter := domain.ListSaleFilter{
		CustomerCode: strings.TrimSpace(req.CustomerCode),
		RouteName:    strings.TrimSpace(req.RouteName),
		Search:       strings.TrimSpace(req.Search),
		DateFrom:     req.DateFrom,
		DateTo:       req.DateTo,
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  pageSize,
	})
	if err != nil {
		return domain.ListSaleResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(sale *domain.Sale) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        sale.ID.String(),
			CreatedAt: sale.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	sales := make([]domain.Sale, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		sales = append(sales, *item)
	}

	resp := domain.ListSaleResponse{Sales: sales}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) Summarize(ctx context.Context, req domain.SummaryRequest) (domain.Summary, error) {
	return s.repo.Summarize(ctx, s.db, domain.ListSaleFilter{
		RouteName: strings.TrimSpace(req.RouteName),
		DateFrom:  req.DateFrom,
		DateTo:    req.DateTo,
	})
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
