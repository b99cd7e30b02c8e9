package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/internal/clock"
	customerdomain "github.com/neuraq/gasdesk/internal/customer/domain"
	"github.com/neuraq/gasdesk/internal/ident"
	"github.com/neuraq/gasdesk/internal/message/domain"
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
		log:          p.Log.Named("message.service"),
		ident:        p.Ident,
		clock:        p.Clock,
		repo:         p.Repo,
		customerRepo: p.CustomerRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateMessageRequest) (domain.Message, error) {
	code := strings.TrimSpace(req.CustomerCode)
	if code == "" {
		return domain.Message{}, domain.ErrInvalidCustomer
	}
	body := strings.TrimSpace(req.Body)
	if body == "" {
		return domain.Message{}, domain.ErrInvalidBody
	}

	customer, err := s.customerRepo.FindByCode(ctx, s.db, code)
	if err != nil {
		return domain.Message{}, err
	}
	if customer == nil {
		return domain.Message{}, customerdomain.ErrNotFound
	}

	now := s.clock.Now()
	message := domain.Message{
		ID:           s.ident.RowID(),
		CustomerCode: customer.Code,
		CustomerName: customer.Name,
		Phone:        customer.Phone,
		Body:         body,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, s.db, &message); err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (s *Service) List(ctx context.Context, req domain.ListMessageRequest) ([]domain.Message, error) {
	items, err := s.repo.FindAll(ctx, s.db, domain.ListMessageFilter{
		Unread:       req.Unread,
		CustomerCode: strings.TrimSpace(req.CustomerCode),
	})
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		messages = append(messages, *item)
	}
	return messages, nil
}

func (s *Service) MarkRead(ctx context.Context, req domain.MarkReadRequest) (domain.Message, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.Message{}, domain.ErrInvalidID
	}

	message, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return domain.Message{}, err
	}
	if message == nil {
		return domain.Message{}, domain.ErrNotFound
	}
	if message.IsRead {
		return *message, nil
	}

	message.IsRead = true
	message.UpdatedAt = s.clock.Now()

	if err := s.repo.MarkRead(ctx, s.db, message); err != nil {
		return domain.Message{}, err
	}
	return *message, nil
}
