package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	routedomain "github.com/neuraq/gasdesk/internal/route/domain"
)

type createRouteRequest struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Remarks string `json:"remarks"`
}

func (s *Server) CreateRoute(c *gin.Context) {
	var req createRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.routeSvc.Create(c.Request.Context(), routedomain.CreateRouteRequest{
		Code:    req.Code,
		Name:    req.Name,
		Remarks: req.Remarks,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) ListRoutes(c *gin.Context) {
	resp, err := s.routeSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) DeleteRoute(c *gin.Context) {
	err := s.routeSvc.Delete(c.Request.Context(), routedomain.DeleteRouteRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func isRouteValidationError(err error) bool {
	switch err {
	case routedomain.ErrInvalidID,
		routedomain.ErrInvalidName:
		return true
	default:
		return false
	}
}
