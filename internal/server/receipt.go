package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	saledomain "github.com/neuraq/gasdesk/internal/sale/domain"
)

// DownloadSaleReceipt streams the entry's delivery receipt as a PDF
// attachment.
func (s *Server) DownloadSaleReceipt(c *gin.Context) {
	sale, err := s.saleSvc.GetByID(c.Request.Context(), saledomain.GetSaleRequest{
		ID: strings.TrimSpace(c.Param("id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	reader, err := s.pdfProvider.GenerateSaleReceipt(c.Request.Context(), sale)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := io.ReadAll(reader)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="receipt-`+sale.Code+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
