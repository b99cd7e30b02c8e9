package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/internal/clock"
	customerdomain "github.com/neuraq/gasdesk/internal/customer/domain"
	"github.com/neuraq/gasdesk/internal/gasrequest/domain"
	"github.com/neuraq/gasdesk/internal/ident"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Ident        *ident.Generator
	Clock        clock.Clock
	Repo         domain.Repository
	CustomerRepo customerdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	ident        *ident.Generator
	clock        clock.Clock
	repo         domain.Repository
	customerRepo customerdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("gasrequest.service"),
		ident:        p.Ident,
		clock:        p.Clock,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateGasRequestRequest) (domain.GasRequest, error) {
	code := strings.TrimSpace(req.CustomerCode)
	if code == "" {
		return domain.GasRequest{}, domain.ErrInvalidCustomer
	}
	if req.Quantity < 1 {
		return domain.GasRequest{}, domain.ErrInvalidQuantity
	}

	customer, err := s.customerRepo.FindByCode(ctx, s.db, code)
	if err != nil {
		return domain.GasRequest{}, err
	}
	if customer == nil {
		return domain.GasRequest{}, customerdomain.ErrNotFound
	}

	now := s.clock.Now()
	request := domain.GasRequest{
		ID:           s.ident.RowID(),
		CustomerCode: customer.Code,
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		Quantity:     req.Quantity,
		DeliveryDate: req.DeliveryDate,
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &request); err != nil {
		return domain.GasRequest{}, err
	}

	s.log.Info("gas request created",
		zap.String("customer_code", request.CustomerCode),
		zap.Int("quantity", request.Quantity),
	)
	return request, nil
}

func (s *Service) List(ctx context.Context, req domain.ListGasRequestRequest) ([]domain.GasRequest, error) {
	status := strings.TrimSpace(req.Status)
	if status != "" && !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	items, err := s.repo.FindAll(ctx, s.db, domain.ListGasRequestFilter{
		Status:       status,
		CustomerCode: strings.TrimSpace(req.CustomerCode),
	})
	if err != nil {
		return nil, err
	}

	requests := make([]domain.GasRequest, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		requests = append(requests, *item)
	}
	return requests, nil
}

func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateGasRequestStatusRequest) (domain.GasRequest, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.GasRequest{}, domain.ErrInvalidID
	}
	if !domain.ValidStatus(req.Status) {
		return domain.GasRequest{}, domain.ErrInvalidStatus
	}

	request, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.GasRequest{}, err
	}
	if request == nil {
		return domain.GasRequest{}, domain.ErrNotFound
	}

	request.Status = req.Status
	request.UpdatedAt = s.clock.Now()

	if err := s.repo.UpdateStatus(ctx, s.db, request); err != nil {
		return domain.GasRequest{}, err
	}
	return *request, nil
}
