package server

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func pathInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, false
	}
	return v, true
}

func pathBool(c *gin.Context, name string) (bool, bool) {
	v, err := strconv.ParseBool(c.Param(name))
	if err != nil {
		return false, false
	}
	return v, true
}
