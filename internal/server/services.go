package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	servicesdomain "github.com/ventia/ventia/internal/services/domain"
)

func (s *Server) createService(c *gin.Context) {
	var req servicesdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	svc, err := s.servicesMgr.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (s *Server) getService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	svc, err := s.servicesMgr.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (s *Server) updateService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	var req servicesdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	svc, err := s.servicesMgr.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

func (s *Server) deleteService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.servicesMgr.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "service deleted"})
}

func (s *Server) searchServices(c *gin.Context) {
	var filter servicesdomain.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	page, err := s.servicesMgr.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) serviceInputProducts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	products, err := s.servicesMgr.InputProducts(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (s *Server) addServiceInput(c *gin.Context) {
	var req servicesdomain.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.servicesMgr.AddInput(c.Request.Context(), req.ServiceID, req.ProductID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "service input added"})
}

func (s *Server) removeServiceInput(c *gin.Context) {
	serviceID, ok := pathID(c, "service_id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.servicesMgr.RemoveInput(c.Request.Context(), serviceID, productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "service input removed"})
}
