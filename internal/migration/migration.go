// Package migration keeps the schema in sync at startup. The service
// owns its database, so declarative AutoMigrate is enough; there is no
// separate migration history to coordinate with.
package migration

import (
	"context"

	customerdomain "github.com/neuraq/gasdesk/internal/customer/domain"
	gasrequestdomain "github.com/neuraq/gasdesk/internal/gasrequest/domain"
	messagedomain "github.com/neuraq/gasdesk/internal/message/domain"
	productdomain "github.com/neuraq/gasdesk/internal/product/domain"
	routedomain "github.com/neuraq/gasdesk/internal/route/domain"
	saledomain "github.com/neuraq/gasdesk/internal/sale/domain"
	"github.com/neuraq/gasdesk/internal/seed"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("migration",
	fx.Invoke(register),
)

func register(lc fx.Lifecycle, db *gorm.DB, log *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := Run(db, log); err != nil {
				return err
			}
			return seed.EnsureDefaults(db)
		},
	})
}

func Run(db *gorm.DB, log *zap.Logger) error {
	err := db.AutoMigrate(
		&routedomain.Route{},
		&productdomain.Product{},
		&customerdomain.Customer{},
		&saledomain.Sale{},
		&gasrequestdomain.GasRequest{},
		&messagedomain.Message{},
	)
	if err != nil {
		return err
	}
	log.Named("migration").Info("schema up to date")
	return nil
}
