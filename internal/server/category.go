package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	categorydomain "github.com/ventia/ventia/internal/category/domain"
)

func (s *Server) createCategory(c *gin.Context) {
	var req categorydomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	cat, err := s.categorySvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (s *Server) listCategories(c *gin.Context) {
	cats, err := s.categorySvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (s *Server) getCategory(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	cat, err := s.categorySvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (s *Server) updateCategory(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	var req categorydomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	cat, err := s.categorySvc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (s *Server) deleteCategory(c *gin.Context) {
	id, ok := pathID(c, "category_id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.categorySvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "category deleted"})
}

func (s *Server) assignCategoryProduct(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.categorySvc.AssignProduct(c.Request.Context(), categoryID, productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "product assigned to category"})
}

func (s *Server) removeCategoryProduct(c *gin.Context) {
	categoryID, ok := pathID(c, "category_id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}
	productID, ok := pathID(c, "product_id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.categorySvc.RemoveProduct(c.Request.Context(), categoryID, productID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "product removed from category"})
}
