package service

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/internal/clock"
	"github.com/neuraq/gasdesk/internal/config"
	"github.com/neuraq/gasdesk/internal/customer/domain"
	"github.com/neuraq/gasdesk/internal/ident"
	"github.com/neuraq/gasdesk/internal/ledgerlock"
	"github.com/neuraq/gasdesk/internal/password"
	saledomain "github.com/neuraq/gasdesk/internal/sale/domain"
	"github.com/neuraq/gasdesk/pkg/db"
	"github.com/neuraq/gasdesk/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// nextCodeLockKey serializes code allocation across concurrent creates.
const nextCodeLockKey = "customers.next-code"

type Params struct {
	fx.In

	Config   config.Config
	DB       *gorm.DB
	Log      *zap.Logger
	Ident    *ident.Generator
	Clock    clock.Clock
	Locker   *ledgerlock.Locker
	Repo     domain.Repository
	SaleRepo saledomain.Repository
}

type Service struct {
	cfg      config.Config
	db       *gorm.DB
	log      *zap.Logger
	ident    *ident.Generator
	clock    clock.Clock
	locker   *ledgerlock.Locker
	repo     domain.Repository
	saleRepo saledomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		cfg:      p.Config,
		db:       p.DB,
		log:      p.Log.Named("customer.service"),
		ident:    p.Ident,
		clock:    p.Clock,
		locker:   p.Locker,
		repo:     p.Repo,
		saleRepo: p.SaleRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateCustomerRequest) (domain.CreateCustomerResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateCustomerResponse{}, domain.ErrInvalidName
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return domain.CreateCustomerResponse{}, domain.ErrInvalidPhone
	}

	credential, err := s.ident.PortalCredential()
	if err != nil {
		return domain.CreateCustomerResponse{}, err
	}
	hash, err := password.Hash(credential)
	if err != nil {
		return domain.CreateCustomerResponse{}, err
	}

	release := s.locker.Lock(nextCodeLockKey)
	defer release()

	lastCode, err := s.repo.MaxCode(ctx, s.db)
	if err != nil {
		return domain.CreateCustomerResponse{}, err
	}

	now := s.clock.Now()
	customer := domain.Customer{
		ID:                 s.ident.RowID(),
		Code:               s.ident.NextCustomerCode(lastCode),
		Name:               name,
		Organization:       strings.TrimSpace(req.Organization),
		Phone:              phone,
		Address:            strings.TrimSpace(req.Address),
		OwnerName:          strings.TrimSpace(req.OwnerName),
		OwnerPhone:         strings.TrimSpace(req.OwnerPhone),
		RouteName:          strings.TrimSpace(req.RouteName),
		PortalPasswordHash: hash,
		CurrentBalance:     req.OpeningBalance,
		CurrentGasOnHand:   req.OpeningGasOnHand,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := s.repo.Insert(ctx, s.db, &customer); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return domain.CreateCustomerResponse{}, domain.ErrCodeTaken
		}
		return domain.CreateCustomerResponse{}, err
	}

	s.log.Info("customer created",
		zap.String("code", customer.Code),
		zap.String("route", customer.RouteName),
	)

	return domain.CreateCustomerResponse{
		Customer:       customer,
		PortalPassword: credential,
	}, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateCustomerRequest) (domain.Customer, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Customer{}, domain.ErrInvalidName
	}

	customer, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if customer == nil {
		return domain.Customer{}, domain.ErrNotFound
	}

	customer.Name = name
	customer.Organization = strings.TrimSpace(req.Organization)
	customer.Phone = strings.TrimSpace(req.Phone)
	customer.Address = strings.TrimSpace(req.Address)
	customer.OwnerName = strings.TrimSpace(req.OwnerName)
	customer.OwnerPhone = strings.TrimSpace(req.OwnerPhone)
	customer.RouteName = strings.TrimSpace(req.RouteName)
	customer.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdateProfile(ctx, s.db, customer); err != nil {
		return domain.Customer{}, err
	}
	return *customer, nil
}

func (s *Service) List(ctx context.Context, req domain.ListCustomerRequest) (domain.ListCustomerResponse, error) {
	filter := domain.ListCustomerFilter{
		RouteName: strings.TrimSpace(req.RouteName),
		Search:    strings.TrimSpace(req.Search),
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
		return domain.ListCustomerResponse{}, err
	}

	totals, err := s.repo.Totals(ctx, s.db, filter)
	if err != nil {
		return domain.ListCustomerResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(customer *domain.Customer) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        customer.ID.String(),
			CreatedAt: customer.CreatedAt.Format(time.RFC3339Nano),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > pageSize {
		items = items[:pageSize]
	}

	customers := make([]domain.Customer, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		customers = append(customers, *item)
	}

	resp := domain.ListCustomerResponse{
		Customers: customers,
		Totals:    totals,
	}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}
	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, req domain.GetCustomerRequest) (domain.Customer, error) {
	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Customer{}, err
	}

	item, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Customer{}, err
	}
	if item == nil {
		return domain.Customer{}, domain.ErrNotFound
	}
	return *item, nil
}

// Delete removes the customer and every sale written against their
// code in one transaction. The ledger lock keeps a concurrent sale
// from re-inserting rows between the two deletes.
func (s *Service) Delete(ctx context.Context, req domain.DeleteCustomerRequest) error {
	if subtle.ConstantTimeCompare([]byte(req.PIN), []byte(s.cfg.DeletePIN)) != 1 {
		return domain.ErrInvalidPIN
	}

	id, err := s.parseID(req.ID)
	if err != nil {
		return err
	}

	customer, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return domain.ErrNotFound
	}

	release := s.locker.Lock(customer.Code)
	defer release()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.saleRepo.DeleteByCustomerCode(ctx, tx, customer.Code); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.log.Info("customer deleted",
		zap.String("code", customer.Code),
	)
	return nil
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
