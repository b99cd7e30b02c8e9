package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/neuraq/gasdesk/internal/sale/domain"
	"github.com/neuraq/gasdesk/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, sale *domain.Sale) error {
	return db.WithContext(ctx).Create(sale).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.Sale, error) {
	var sale domain.Sale
	err := db.WithContext(ctx).Raw(
		`SELECT * FROM sales WHERE id = ?`,
		id,
	).Scan(&sale).Error
	if err != nil {
		return nil, err
	}
	if sale.ID == 0 {
		return nil, nil
	}
	return &sale, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, sale *domain.Sale) error {
	return db.WithContext(ctx).Exec(
		`UPDATE sales
		 SET customer_code = ?, customer_name = ?, customer_phone = ?, customer_address = ?,
		     product_code = ?, product_name = ?,
		     sales_quantity = ?, empty_quantity = ?,
		     base_product_price = ?, product_price = ?, is_custom_price = ?,
		     today_credit = ?, total_amount_received = ?,
		     previous_balance = ?, total_balance = ?,
		     sale_date = ?, updated_at = ?
		 WHERE id = ?`,
		sale.CustomerCode,
		sale.CustomerName,
		sale.CustomerPhone,
		sale.CustomerAddress,
		sale.ProductCode,
		sale.ProductName,
		sale.SalesQuantity,
		sale.EmptyQuantity,
		sale.BaseProductPrice,
		sale.ProductPrice,
		sale.IsCustomPrice,
		sale.TodayCredit,
		sale.TotalAmountReceived,
		sale.PreviousBalance,
		sale.TotalBalance,
		sale.SaleDate,
		sale.UpdatedAt,
		sale.ID,
	).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListSaleFilter, page pagination.Pagination) ([]*domain.Sale, error) {
	var sales []*domain.Sale
	stmt := applyFilter(db.WithContext(ctx).Model(&domain.Sale{}), filter)

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
		Find(&sales).Error
	if err != nil {
		return nil, err
	}
	return sales, nil
}

func (r *repo) Summarize(ctx context.Context, db *gorm.DB, filter domain.ListSaleFilter) (domain.Summary, error) {
	var summary domain.Summary
	stmt := applyFilter(db.WithContext(ctx).Model(&domain.Sale{}), filter)
	err := stmt.
		Select(`COUNT(*) AS sales,
		        COALESCE(SUM(sales_quantity), 0) AS cylinders_sold,
		        COALESCE(SUM(empty_quantity), 0) AS empties_taken,
		        COALESCE(SUM(today_credit), 0) AS total_credit,
		        COALESCE(SUM(total_amount_received), 0) AS total_received`).
		Scan(&summary).Error
	return summary, err
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id snowflake.ID) error {
	return db.WithContext(ctx).Exec(`DELETE FROM sales WHERE id = ?`, id).Error
}

func (r *repo) DeleteByCustomerCode(ctx context.Context, db *gorm.DB, code string) error {
	return db.WithContext(ctx).Exec(`DELETE FROM sales WHERE customer_code = ?`, code).Error
}

func applyFilter(stmt *gorm.DB, filter domain.ListSaleFilter) *gorm.DB {
	if filter.CustomerCode != "" {
		stmt = stmt.Where("customer_code = ?", filter.CustomerCode)
	}
	if filter.RouteName != "" {
		stmt = stmt.Where("route_name = ?", filter.RouteName)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		stmt = stmt.Where(
			"code LIKE ? OR customer_code LIKE ? OR customer_name LIKE ? OR product_name LIKE ?",
			like, like, like, like,
		)
	}
	if filter.DateFrom != nil {
		stmt = stmt.Where("sale_date >= ?", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		stmt = stmt.Where("sale_date <= ?", *filter.DateTo)
	}
	return stmt
}
