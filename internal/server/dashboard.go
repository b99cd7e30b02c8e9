package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/neuraq/gasdesk/internal/customer/domain"
	gasrequestdomain "github.com/neuraq/gasdesk/internal/gasrequest/domain"
	messagedomain "github.com/neuraq/gasdesk/internal/message/domain"
	saledomain "github.com/neuraq/gasdesk/internal/sale/domain"
	"github.com/shopspring/decimal"
)

type DashboardResponse struct {
	Customers          int64             `json:"customers"`
	GasOnHand          int64             `json:"gas_on_hand"`
	OutstandingBalance decimal.Decimal   `json:"outstanding_balance"`
	Today              saledomain.Summary `json:"today"`
	PendingRequests    int64             `json:"pending_requests"`
	UnreadMessages     int64             `json:"unread_messages"`
	RecentSales        []saledomain.Sale `json:"recent_sales"`
}

func (s *Server) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var customerTotals customerdomain.LedgerTotals
	err := s.db.WithContext(ctx).
		Model(&customerdomain.Customer{}).
		Select(`COUNT(*) AS customers,
		        COALESCE(SUM(current_gas_on_hand), 0) AS gas_on_hand,
		        COALESCE(SUM(current_balance), 0) AS total_balance`).
		Scan(&customerTotals).Error
	if err != nil {
		AbortWithError(c, err)
		return
	}

	startOfDay, now := todayWindow(s.clock.Now())

	today, err := s.saleSvc.Summarize(ctx, saledomain.SummaryRequest{
		DateFrom: &startOfDay,
		DateTo:   &now,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var pending int64
	err = s.db.WithContext(ctx).
		Model(&gasrequestdomain.GasRequest{}).
		Where("status = ?", gasrequestdomain.StatusPending).
		Count(&pending).Error
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var unread int64
	err = s.db.WithContext(ctx).
		Model(&messagedomain.Message{}).
		Where("is_read = ?", false).
		Count(&unread).Error
	if err != nil {
		AbortWithError(c, err)
		return
	}

	recent, err := s.saleSvc.List(ctx, saledomain.ListSaleRequest{PageSize: 10})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": DashboardResponse{
		Customers:          customerTotals.Customers,
		GasOnHand:          customerTotals.GasOnHand,
		OutstandingBalance: customerTotals.TotalBalance,
		Today:              today,
		PendingRequests:    pending,
		UnreadMessages:     unread,
		RecentSales:        recent.Sales,
	}})
}

// todayWindow is the UTC range from midnight up to the given instant.
func todayWindow(now time.Time) (time.Time, time.Time) {
	now = now.UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return start, now
}
