package server

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/neuraq/gasdesk/internal/customer/domain"
	saledomain "github.com/neuraq/gasdesk/internal/sale/domain"
)

const exportPageSize = 500

const exportDateLayout = "2006-01-02 15:04:05"

// ExportSalesCSV writes the filtered ledger as a CSV download, paging
// through the store so large histories do not load at once.
func (s *Server) ExportSalesCSV(c *gin.Context) {
	var query struct {
		CustomerCode string `form:"customer_code"`
		RouteName    string `form:"route_name"`
		DateFrom     string `form:"date_from"`
		DateTo       string `form:"date_to"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	dateFrom, err := parseOptionalTime(query.DateFrom, false)
	if err != nil {
		AbortWithError(c, newValidationError("date_from", "invalid_date_from", "invalid date_from"))
		return
	}
	dateTo, err := parseOptionalTime(query.DateTo, true)
	if err != nil {
		AbortWithError(c, newValidationError("date_to", "invalid_date_to", "invalid date_to"))
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="sales.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{
		"code", "sale_date", "customer_code", "customer_name", "route",
		"product_code", "product_name", "quantity", "empties",
		"price", "credit", "received", "previous_balance", "total_balance",
	})

	pageToken := ""
	for {
		resp, err := s.saleSvc.List(c.Request.Context(), saledomain.ListSaleRequest{
			CustomerCode: query.CustomerCode,
			RouteName:    query.RouteName,
			DateFrom:     dateFrom,
			DateTo:       dateTo,
			PageToken:    pageToken,
			PageSize:     exportPageSize,
		})
		if err != nil {
			if pageToken == "" && !c.Writer.Written() {
				AbortWithError(c, err)
				return
			}
			break
		}

		for _, sale := range resp.Sales {
			_ = w.Write([]string{
				csvSafe(sale.Code),
				sale.SaleDate.Format(exportDateLayout),
				csvSafe(sale.CustomerCode),
				csvSafe(sale.CustomerName),
				csvSafe(sale.RouteName),
				csvSafe(sale.ProductCode),
				csvSafe(sale.ProductName),
				strconv.Itoa(sale.SalesQuantity),
				strconv.Itoa(sale.EmptyQuantity),
				sale.ProductPrice.StringFixed(2),
				sale.TodayCredit.StringFixed(2),
				sale.TotalAmountReceived.StringFixed(2),
				sale.PreviousBalance.StringFixed(2),
				sale.TotalBalance.StringFixed(2),
			})
		}

		if !resp.PageInfo.HasMore || resp.PageInfo.NextPageToken == "" {
			break
		}
		pageToken = resp.PageInfo.NextPageToken
	}

	w.Flush()
}

// ExportCustomersCSV writes the customer register as a CSV download,
// paging the same way the sales export does.
func (s *Server) ExportCustomersCSV(c *gin.Context) {
	var query struct {
		RouteName string `form:"route_name"`
		Search    string `form:"search"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="customers.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{
		"code", "name", "organization", "phone", "address",
		"owner_name", "owner_phone", "route",
		"balance", "gas_on_hand", "last_purchase",
	})

	pageToken := ""
	for {
		resp, err := s.customerSvc.List(c.Request.Context(), customerdomain.ListCustomerRequest{
			RouteName: query.RouteName,
			Search:    query.Search,
			PageToken: pageToken,
			PageSize:  exportPageSize,
		})
		if err != nil {
			if pageToken == "" && !c.Writer.Written() {
				AbortWithError(c, err)
				return
			}
			break
		}

		for _, cust := range resp.Customers {
			lastPurchase := ""
			if cust.LastPurchaseDate != nil {
				lastPurchase = cust.LastPurchaseDate.Format(exportDateLayout)
			}
			_ = w.Write([]string{
				csvSafe(cust.Code),
				csvSafe(cust.Name),
				csvSafe(cust.Organization),
				csvSafe(cust.Phone),
				csvSafe(cust.Address),
				csvSafe(cust.OwnerName),
				csvSafe(cust.OwnerPhone),
				csvSafe(cust.RouteName),
				cust.CurrentBalance.StringFixed(2),
				strconv.Itoa(cust.CurrentGasOnHand),
				lastPurchase,
			})
		}

		if !resp.PageInfo.HasMore || resp.PageInfo.NextPageToken == "" {
			break
		}
		pageToken = resp.PageInfo.NextPageToken
	}

	w.Flush()
}

// csvSafe guards spreadsheet formula injection on cells that start
// with =, +, - or @.
func csvSafe(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	switch value[0] {
	case '=', '+', '-', '@':
		return "'" + value
	}
	return value
}
