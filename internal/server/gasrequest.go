package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	gasrequestdomain "github.com/neuraq/gasdesk/internal/gasrequest/domain"
)

type createGasRequestRequest struct {
	CustomerCode string `json:"customer_code"`
	Quantity     int    `json:"quantity"`
	DeliveryDate string `json:"delivery_date"`
}

func (s *Server) CreateGasRequest(c *gin.Context) {
	var req createGasRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	deliveryDate, err := parseOptionalTime(req.DeliveryDate, false)
	if err != nil {
		AbortWithError(c, newValidationError("delivery_date", "invalid_delivery_date", "invalid delivery_date"))
		return
	}

	resp, err := s.gasRequestSvc.Create(c.Request.Context(), gasrequestdomain.CreateGasRequestRequest{
		CustomerCode: req.CustomerCode,
		Quantity:     req.Quantity,
		DeliveryDate: deliveryDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListGasRequests(c *gin.Context) {
	var query struct {
		Status       string `form:"status"`
		CustomerCode string `form:"customer_code"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.gasRequestSvc.List(c.Request.Context(), gasrequestdomain.ListGasRequestRequest{
		Status:       query.Status,
		CustomerCode: query.CustomerCode,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

type updateGasRequestStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) UpdateGasRequestStatus(c *gin.Context) {
	var req updateGasRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.gasRequestSvc.UpdateStatus(c.Request.Context(), gasrequestdomain.UpdateGasRequestStatusRequest{
		ID:     strings.TrimSpace(c.Param("id")),
		Status: strings.TrimSpace(req.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isGasRequestValidationError(err error) bool {
	switch err {
	case gasrequestdomain.ErrInvalidID,
		gasrequestdomain.ErrInvalidCustomer,
		gasrequestdomain.ErrInvalidQuantity,
		gasrequestdomain.ErrInvalidStatus:
		return true
	default:
		return false
	}
}
