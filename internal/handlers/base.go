package handlers

import (
	"errors"
	"net/http"

	"qna/internal/middleware"
	"qna/internal/models"
	"qna/internal/services"
	"qna/internal/utils"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the session user loaded by middleware, or nil.
func CurrentUser(c *gin.Context) *models.User {
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		return user.(*models.User)
	}
	return nil
}

// currentUserID is the acting identity passed into services; 0 = anonymous.
func currentUserID(c *gin.Context) uint {
	if user := CurrentUser(c); user != nil {
		return user.ID
	}
	return 0
}

// fail maps service errors onto HTTP status codes.
func fail(c *gin.Context, err error) {
	switch {
	case services.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotAuthor):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		c.Error(err) // surfaced by the request logger
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// pathID parses a numeric path parameter; 0 when absent or malformed.
func pathID(c *gin.Context, name string) uint {
	return utils.StringToUint(c.Param(name))
}

// pageParams reads ?page= and ?size= with the usual defaults.
func pageParams(c *gin.Context) (page, size int) {
	page = utils.StringToInt(c.Query("page"))
	size = utils.StringToInt(c.Query("size"))
	if size <= 0 {
		size = services.DefaultPageSize
	}
	return page, size
}
