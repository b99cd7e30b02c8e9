package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/internal/customer/domain"
	"github.com/neuraq/gasdesk/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Create(customer).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM customers WHERE id = ?`,
		id,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

// FindByCode returns the lowest row id when duplicates exist. The
// unique index prevents new duplicates; rows imported before it was
// added may still collide.
func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM customers WHERE code = ? ORDER BY id ASC LIMIT 1`,
		code,
	).Scan(&customer).Error
	if err != nil {
		return nil, err
	}
	if customer.ID == 0 {
		return nil, nil
	}
	return &customer, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListCustomerFilter, page pagination.Pagination) ([]*domain.Customer, error) {
	var customers []*domain.Customer
	stmt := applyFilter(db.WithContext(ctx).Model(&domain.Customer{}), filter)

	if page.PageToken != "" {
		cursor, err := pagination.DecodeCursor(page.PageToken)
		if err != nil {
			return nil, err
		}
		if createdAt, ok := cursor.CreatedAtTime(); ok {
			stmt = stmt.Where(
				"(created_at < ?) OR (created_at = ? AND id < ?)",
				createdAt, createdAt, cursor.ID,
			)
		}
	}

	if page.PageSize > 0 {
		stmt = stmt.Limit(page.PageSize + 1)
	}

	err := stmt.
		Order("created_at desc, id desc").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repo) Totals(ctx context.Context, db *gorm.DB, filter domain.ListCustomerFilter) (domain.LedgerTotals, error) {
	var totals domain.LedgerTotals
	stmt := applyFilter(db.WithContext(ctx).Model(&domain.Customer{}), filter)
	err := stmt.
		Select(`COUNT(*) AS customers,
		        COALESCE(SUM(current_gas_on_hand), 0) AS gas_on_hand,
		        COALESCE(SUM(current_balance), 0) AS total_balance`).
		Scan(&totals).Error
	return totals, err
}

func (r *repo) MaxCode(ctx context.Context, db *gorm.DB) (string, error) {
	var code string
	err := db.WithContext(ctx).Raw(
		`SELECT COALESCE(MAX(code), '') FROM customers`,
	).Scan(&code).Error
	return code, err
}

func (r *repo) UpdateProfile(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Exec(
		`UPDATE customers
		 SET name = ?, organization = ?, phone = ?, address = ?,
		     owner_name = ?, owner_phone = ?, route_name = ?, updated_at = ?
		 WHERE id = ?`,
		customer.Name,
		customer.Organization,
		customer.Phone,
		customer.Address,
		customer.OwnerName,
		customer.OwnerPhone,
		customer.RouteName,
		customer.UpdatedAt,
		customer.ID,
	).Error
}

func (r *repo) SetLedger(ctx context.Context, db *gorm.DB, code string, state domain.LedgerState, now time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE customers
		 SET current_balance = ?, current_gas_on_hand = ?, last_purchase_date = ?, updated_at = ?
		 WHERE id = (SELECT MIN(id) FROM customers WHERE code = ?)`,
		state.Balance,
		state.GasOnHand,
		state.LastPurchaseDate,
		now,
		code,
	).Error
}

func (r *repo) AdjustLedger(ctx context.Context, db *gorm.DB, code string, delta domain.LedgerDelta, now time.Time) error {
	stmt := db.WithContext(ctx)
	if delta.LastPurchaseDate != nil {
		return stmt.Exec(
			`UPDATE customers
			 SET current_balance = current_balance + ?,
			     current_gas_on_hand = current_gas_on_hand + ?,
			     last_purchase_date = ?,
			     updated_at = ?
			 WHERE id = (SELECT MIN(id) FROM customers WHERE code = ?)`,
			delta.Balance,
			delta.GasOnHand,
			delta.LastPurchaseDate,
			now,
			code,
		).Error
	}
	return stmt.Exec(
		`UPDATE customers
		 SET current_balance = current_balance + ?,
		     current_gas_on_hand = current_gas_on_hand + ?,
		     updated_at = ?
		 WHERE id = (SELECT MIN(id) FROM customers WHERE code = ?)`,
		delta.Balance,
		delta.GasOnHand,
		now,
		code,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM customers WHERE id = ?`, id).Error
}

func applyFilter(stmt *gorm.DB, filter domain.ListCustomerFilter) *gorm.DB {
	if filter.RouteName != "" {
		stmt = stmt.Where("route_name = ?", filter.RouteName)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		stmt = stmt.Where(
			"code LIKE ? OR name LIKE ? OR phone LIKE ? OR organization LIKE ?",
			like, like, like, like,
		)
	}
	return stmt
}
