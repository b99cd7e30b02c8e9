package service

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/internal/clock"
	"github.com/neuraq/gasdesk/internal/ident"
	"github.com/neuraq/gasdesk/internal/route/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Ident *ident.Generator
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	ident *ident.Generator
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("route.service"),
		ident: p.Ident,
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRouteRequest) (domain.Route, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.Route{}, domain.ErrInvalidName
	}

	code := strings.TrimSpace(req.Code)
	if code == "" {
		code = name
	}

	route := domain.Route{
		ID:        s.ident.RowID(),
		Code:      code,
		Name:      name,
		Remarks:   strings.TrimSpace(req.Remarks),
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.Insert(ctx, s.db, &route); err != nil {
		return domain.Route{}, err
	}

	s.log.Info("route created", zap.String("route", route.Name))
	return route, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Route, error) {
	return s.repo.FindAll(ctx, s.db)
}

func (s *Service) Delete(ctx context.Context, req domain.DeleteRouteRequest) error {
	id, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil || id == 0 {
		return domain.ErrInvalidID
	}

	route, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return err
	}
	if route == nil {
		return domain.ErrNotFound
	}

	return s.repo.Delete(ctx, s.db, id)
}
