package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	messagedomain "github.com/neuraq/gasdesk/internal/message/domain"
)

type createMessageRequest struct {
	CustomerCode string `json:"customer_code"`
	Body         string `json:"body"`
}

func (s *Server) CreateMessage(c *gin.Context) {
	var req createMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.messageSvc.Create(c.Request.Context(), messagedomain.CreateMessageRequest{
		CustomerCode: req.CustomerCode,
		Body:         req.Body,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListMessages(c *gin.Context) {
	var query struct {
		Unread       string `form:"unread"`
		CustomerCode string `form:"customer_code"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	unread, err := parseOptionalBool(query.Unread)
	if err != nil {
		AbortWithError(c, newValidationError("unread", "invalid_unread", "invalid unread"))
		return
	}

	resp, err := s.messageSvc.List(c.Request.Context(), messagedomain.ListMessageRequest{
		Unread:       unread,
		CustomerCode: query.CustomerCode,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) MarkMessageRead(c *gin.Context) {
	resp, err := s.messageSvc.MarkRead(c.Request.Context(), messagedomain.MarkReadRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isMessageValidationError(err error) bool {
	switch err {
	case messagedomain.ErrInvalidID,
		messagedomain.ErrInvalidCustomer,
		messagedomain.ErrInvalidBody:
		return true
	default:
		return false
	}
}
