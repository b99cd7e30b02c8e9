package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	customerdomain "github.com/neuraq/gasdesk/internal/customer/domain"
	saledomain "github.com/neuraq/gasdesk/internal/sale/domain"
	"github.com/neuraq/gasdesk/pkg/db/pagination"
	"github.com/shopspring/decimal"
)

type createCustomerRequest struct {
	Name             string          `json:"name"`
	Organization     string          `json:"organization"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	OwnerName        string          `json:"owner_name"`
	OwnerPhone       string          `json:"owner_phone"`
	RouteName        string          `json:"route_name"`
	OpeningBalance   decimal.Decimal `json:"opening_balance"`
	OpeningGasOnHand int             `json:"opening_gas_on_hand"`
}

func (s *Server) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.Create(c.Request.Context(), customerdomain.CreateCustomerRequest{
		Name:             req.Name,
		Organization:     req.Organization,
		Phone:            req.Phone,
		Address:          req.Address,
		OwnerName:        req.OwnerName,
		OwnerPhone:       req.OwnerPhone,
		RouteName:        req.RouteName,
		OpeningBalance:   req.OpeningBalance,
		OpeningGasOnHand: req.OpeningGasOnHand,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListCustomers(c *gin.Context) {
	var query struct {
		pagination.Pagination
		RouteName string `form:"route_name"`
		Search    string `form:"search"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.List(c.Request.Context(), customerdomain.ListCustomerRequest{
		RouteName: query.RouteName,
		Search:    query.Search,
		PageToken: query.PageToken,
		PageSize:  query.PageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetCustomerByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.customerSvc.GetByID(c.Request.Context(), customerdomain.GetCustomerRequest{
		ID: id,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateCustomerRequest struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	OwnerName    string `json:"owner_name"`
	OwnerPhone   string `json:"owner_phone"`
	RouteName    string `json:"route_name"`
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	var req updateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.customerSvc.Update(c.Request.Context(), customerdomain.UpdateCustomerRequest{
		ID:           strings.TrimSpace(c.Param("id")),
		Name:         req.Name,
		Organization: req.Organization,
		Phone:        req.Phone,
		Address:      req.Address,
		OwnerName:    req.OwnerName,
		OwnerPhone:   req.OwnerPhone,
		RouteName:    req.RouteName,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type deleteCustomerRequest struct {
	PIN string `json:"pin"`
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	var req deleteCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	err := s.customerSvc.Delete(c.Request.Context(), customerdomain.DeleteCustomerRequest{
		ID:  strings.TrimSpace(c.Param("id")),
		PIN: req.PIN,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (s *Server) ListCustomerSales(c *gin.Context) {
	customer, err := s.customerSvc.GetByID(c.Request.Context(), customerdomain.GetCustomerRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var query struct {
		pagination.Pagination
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.saleSvc.List(c.Request.Context(), saledomain.ListSaleRequest{
		CustomerCode: customer.Code,
		PageToken:    query.PageToken,
		PageSize:     query.PageSize,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isCustomerValidationError(err error) bool {
	switch err {
	case customerdomain.ErrInvalidID,
		customerdomain.ErrInvalidName,
		customerdomain.ErrInvalidPhone:
		return true
	default:
		return false
	}
}
