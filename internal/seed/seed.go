// Package seed bootstraps reference data so a fresh install is usable
// without manual setup.
package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	productdomain "github.com/neuraq/gasdesk/internal/product/domain"
	routedomain "github.com/neuraq/gasdesk/internal/route/domain"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const defaultRouteName = "Town"

var defaultProducts = []struct {
	Code  string
	Name  string
	Price int64
}{
	{"14KG", "14.2kg Domestic", 905},
	{"19KG", "19kg Commercial", 1825},
	{"5KG", "5kg FTL", 345},
}

// EnsureDefaults creates the starter route and cylinder products when
// the tables are empty. Existing data is never touched.
func EnsureDefaults(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureDefaultRoute(ctx, tx, node); err != nil {
			return err
		}
		return ensureDefaultProducts(ctx, tx, node)
	})
}

func ensureDefaultRoute(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&routedomain.Route{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return tx.WithContext(ctx).Create(&routedomain.Route{
		ID:   node.Generate(),
		Code: defaultRouteName,
		Name: defaultRouteName,
	}).Error
}

func ensureDefaultProducts(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&productdomain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, p := range defaultProducts {
		err := tx.WithContext(ctx).Create(&productdomain.Product{
			ID:    node.Generate(),
			Code:  p.Code,
			Name:  p.Name,
			Price: decimal.NewFromInt(p.Price),
		}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
