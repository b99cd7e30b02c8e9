package main

import (
	"github.com/neuraq/gasdesk/internal/clock"
	"github.com/neuraq/gasdesk/internal/config"
	"github.com/neuraq/gasdesk/internal/customer"
	"github.com/neuraq/gasdesk/internal/gasrequest"
	"github.com/neuraq/gasdesk/internal/ident"
	"github.com/neuraq/gasdesk/internal/ledgerlock"
	"github.com/neuraq/gasdesk/internal/message"
	"github.com/neuraq/gasdesk/internal/migration"
	"github.com/neuraq/gasdesk/internal/observability"
	"github.com/neuraq/gasdesk/internal/product"
	"github.com/neuraq/gasdesk/internal/providers"
	"github.com/neuraq/gasdesk/internal/route"
	"github.com/neuraq/gasdesk/internal/sale"
	"github.com/neuraq/gasdesk/internal/server"
	"github.com/neuraq/gasdesk/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		ident.Module,
		clock.Module,
		ledgerlock.Module,
		db.Module,
		migration.Module,

		route.Module,
		product.Module,
		customer.Module,
		sale.Module,
		gasrequest.Module,
		message.Module,
		providers.Module,

		server.Module,
	)

	app.Run()
}
