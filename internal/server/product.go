package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	productdomain "github.com/ventia/ventia/internal/product/domain"
	"github.com/ventia/ventia/pkg/db/pagination"
)

func (s *Server) createProduct(c *gin.Context) {
	var req productdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	p, err := s.productSvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) getProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	p, err := s.productSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) updateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	var req productdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	p, err := s.productSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.productSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "product deleted"})
}

func (s *Server) searchProducts(c *gin.Context) {
	var filter productdomain.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	page, err := s.productSvc.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) lowStockProducts(c *gin.Context) {
	var req pagination.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	page, err := s.productSvc.LowStock(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) expiredProducts(c *gin.Context) {
	var req pagination.Request
	if err := c.ShouldBindQuery(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	page, err := s.productSvc.Expired(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// setProductStock handles /product/stock/:id/:stock/:replace. With replace
// true the stock is overwritten; otherwise the value is added.
func (s *Server) setProductStock(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}
	stock, ok := pathInt(c, "stock")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}
	replace, ok := pathBool(c, "replace")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	var (
		p   *productdomain.Product
		err error
	)
	if replace {
		p, err = s.productSvc.SetStock(c.Request.Context(), id, stock)
	} else {
		p, err = s.productSvc.AddStock(c.Request.Context(), id, stock)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) updateProductImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, errInvalidBody)
		return
	}

	body, err := file.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer body.Close()

	p, err := s.productSvc.UploadImage(c.Request.Context(), id, productdomain.ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Body:        body,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProductImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	p, err := s.productSvc.DeleteImage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) productCategories(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	categories, err := s.categorySvc.CategoriesForProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
