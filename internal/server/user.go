package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clientdomain "github.com/ventia/ventia/internal/client/domain"
	employeedomain "github.com/ventia/ventia/internal/employee/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	emp, err := s.employeeSvc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := s.authMgr.Issue(emp.ID, emp.Email, emp.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"employee":     emp,
	})
}

func (s *Server) createEmployee(c *gin.Context) {
	var req employeedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	emp, err := s.employeeSvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (s *Server) getEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	emp, err := s.employeeSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (s *Server) getEmployeeByEmail(c *gin.Context) {
	emp, err := s.employeeSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (s *Server) getEmployeeByDocument(c *gin.Context) {
	emp, err := s.employeeSvc.GetByDocument(c.Request.Context(), c.Param("documentid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (s *Server) updateEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	var req employeedomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	emp, err := s.employeeSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (s *Server) deleteEmployee(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.employeeSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "employee deleted"})
}

func (s *Server) searchEmployees(c *gin.Context) {
	var filter employeedomain.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	page, err := s.employeeSvc.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

func (s *Server) createClient(c *gin.Context) {
	var req clientdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	client, err := s.clientSvc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) getClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	client, err := s.clientSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) getClientByEmail(c *gin.Context) {
	client, err := s.clientSvc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) getClientByDocument(c *gin.Context) {
	client, err := s.clientSvc.GetByDocument(c.Request.Context(), c.Param("documentid"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) updateClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	var req clientdomain.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	client, err := s.clientSvc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, client)
}

func (s *Server) deleteClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, errInvalidBody)
		return
	}

	if err := s.clientSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "client deleted"})
}

func (s *Server) searchClients(c *gin.Context) {
	var filter clientdomain.Filter
	if err := c.ShouldBindJSON(&filter); err != nil {
		respondError(c, errInvalidBody)
		return
	}

	page, err := s.clientSvc.Search(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
