package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	paymentdomain "github.com/ventia/ventia/internal/payment/domain"
)

func (s *Server) createPayment(c *gin.Context) {
	var req paymentdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	p, err := s.paymentSvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) getPayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	p, err := s.paymentSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) changePaymentStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	p, err := s.paymentSvc.ChangeStatus(c.Request.Context(), id, c.Param("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deletePayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.paymentSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "payment deleted"})
}

func (s *Server) searchPayments(c *gin.Context) {
	var filter paymentdomain.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	page, err := s.paymentSvc.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
