package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	invoicedomain "github.com/ventia/ventia/internal/invoice/domain"
)

func (s *Server) generateInvoice(c *gin.Context) {
	var req invoicedomain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	inv, err := s.invoiceSvc.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}
