package server

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

// streamFile serves a stored blob inline. The wildcard param keeps its leading
// slash, which is not part of the storage key.
func (s *Server) streamFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		respondError(c, errInvalidBody)
		return
	}

	obj, err := s.storage.Get(c.Request.Context(), key)
	if err != nil {
		respondError(c, err)
		return
	}
	defer obj.Body.Close()

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", path.Base(key)))
	c.DataFromReader(http.StatusOK, obj.Size, obj.ContentType, obj.Body, nil)
}
