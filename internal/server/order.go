package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	orderdomain "github.com/ventia/ventia/internal/order/domain"
)

func (s *Server) createOrder(c *gin.Context) {
	var req orderdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	o, err := s.orderSvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	o, err := s.orderSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

type orderPatch struct {
	ID int64 `json:"id"`
	orderdomain.UpdateRequest
}

func (s *Server) updateOrder(c *gin.Context) {
	var req orderPatch
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		respondError(c, errInvalidBody)
		return
	}

	o, err := s.orderSvc.Update(c.Request.Context(), req.ID, req.UpdateRequest)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.orderSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "order deleted"})
}

func (s *Server) searchOrders(c *gin.Context) {
	var filter orderdomain.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	page, err := s.orderSvc.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) changeOrderStatus(c *gin.Context) {
	id, ok := pathID(c, "order_id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	o, err := s.orderSvc.ChangeStatus(c.Request.Context(), id, orderdomain.Status(c.Param("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (s *Server) orderProducts(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	lines, err := s.orderSvc.Products(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (s *Server) orderServices(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	lines, err := s.orderSvc.Services(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (s *Server) addOrderProduct(c *gin.Context) {
	var req orderdomain.LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	line, err := s.orderSvc.AddProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (s *Server) updateOrderProduct(c *gin.Context) {
	var req orderdomain.LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	line, err := s.orderSvc.UpdateProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (s *Server) removeOrderProduct(c *gin.Context) {
	var req orderdomain.LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.orderSvc.RemoveProduct(c.Request.Context(), req.OrderID, req.ProductID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "product line removed"})
}

func (s *Server) addOrderService(c *gin.Context) {
	var req orderdomain.ServiceLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	line, err := s.orderSvc.AddService(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (s *Server) updateOrderService(c *gin.Context) {
	var req orderdomain.ServiceLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	line, err := s.orderSvc.UpdateService(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (s *Server) removeOrderService(c *gin.Context) {
	var req orderdomain.ServiceLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.orderSvc.RemoveService(c.Request.Context(), req.OrderID, req.ServiceID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "service line removed"})
}
