package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	saledomain "github.com/neuraq/gasdesk/internal/sale/domain"
	"github.com/neuraq/gasdesk/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

type createSaleRequest struct {
	CustomerCode   string          `json:"customer_code"`
	ProductCode    string          `json:"product_code"`
	RouteCode      string          `json:"route_code"`
	SalesQuantity  int             `json:"sales_quantity"`
	EmptyQuantity  int             `json:"empty_quantity"`
	AmountReceived decimal.Decimal `json:"amount_received"`
	CustomPrice    decimal.Decimal `json:"custom_price"`
	SaleDate       string          `json:"sale_date"`
}

func (s *Server) CreateSale(c *gin.Context) {
	var req createSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	saleDate, err := parseOptionalTime(req.SaleDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("sale_date", "invalid_sale_date", "invalid sale_date"))
		return
	}

	resp, err := s.saleSvc.Create(c.Request.Context(), saledomain.CreateSaleRequest{
		CustomerCode:   req.CustomerCode,
		ProductCode:    req.ProductCode,
		RouteCode:      req.RouteCode,
		SalesQuantity:  req.SalesQuantity,
		EmptyQuantity:  req.EmptyQuantity,
		AmountReceived: req.AmountReceived,
		CustomPrice:    req.CustomPrice,
		SaleDate:       saleDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListSales(c *gin.Context) {
	var query struct {
		pagination.Pagination
		CustomerCode string `form:"customer_code"`
		RouteName    string `form:"route_name"`
		Search       string `form:"search"`
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

	resp, err := s.saleSvc.List(c.Request.Context(), saledomain.ListSaleRequest{
		CustomerCode: query.CustomerCode,
		RouteName:    query.RouteName,
		Search:       query.Search,
		DateFrom:     dateFrom,
		DateTo:       dateTo,
		PageToken:    query.PageToken,
		PageSize:     query.PageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) SalesSummary(c *gin.Context) {
	var query struct {
		RouteName string `form:"route_name"`
		DateFrom  string `form:"date_from"`
		DateTo    string `form:"date_to"`
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

	resp, err := s.saleSvc.Summarize(c.Request.Context(), saledomain.SummaryRequest{
		RouteName: query.RouteName,
		DateFrom:  dateFrom,
		DateTo:    dateTo,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetSaleByID(c *gin.Context) {
	resp, err := s.saleSvc.GetByID(c.Request.Context(), saledomain.GetSaleRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateSaleRequest struct {
	CustomerCode    string          `json:"customer_code"`
	ProductCode     string          `json:"product_code"`
	SalesQuantity   int             `json:"sales_quantity"`
	EmptyQuantity   int             `json:"empty_quantity"`
	AmountReceived  decimal.Decimal `json:"amount_received"`
	CustomPrice     decimal.Decimal `json:"custom_price"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	SaleDate        string          `json:"sale_date"`
}

func (s *Server) UpdateSale(c *gin.Context) {
	var req updateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	var saleDate *time.Time
	if req.SaleDate != "" {
		parsed, err := parseOptionalTime(req.SaleDate, false)
		if err != nil {
			AbortWithError(c, newValidationError("sale_date", "invalid_sale_date", "invalid sale_date"))
			return
		}
		saleDate = parsed
	}

	resp, err := s.saleSvc.Update(c.Request.Context(), saledomain.UpdateSaleRequest{
		ID:              strings.TrimSpace(c.Param("id")),
		CustomerCode:    req.CustomerCode,
		ProductCode:     req.ProductCode,
		SalesQuantity:   req.SalesQuantity,
		EmptyQuantity:   req.EmptyQuantity,
		AmountReceived:  req.AmountReceived,
		CustomPrice:     req.CustomPrice,
		PreviousBalance: req.PreviousBalance,
		SaleDate:        saleDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type deleteSaleRequest struct {
	PIN string `json:"pin"`
}

func (s *Server) DeleteSale(c *gin.Context) {
	var req deleteSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	err := s.saleSvc.Delete(c.Request.Context(), saledomain.DeleteSaleRequest{
		ID:  strings.TrimSpace(c.Param("id")),
		PIN: req.PIN,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func isSaleValidationError(err error) bool {
	switch err {
	case saledomain.ErrInvalidID,
		saledomain.ErrInvalidCustomer,
		saledomain.ErrInvalidProduct,
		saledomain.ErrInvalidRoute,
		saledomain.ErrInvalidQuantity,
		saledomain.ErrInvalidAmount:
		return true
	default:
		return false
	}
}
