package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/exemplo/crudmongo-api/pkg/errors"
)

// ErrorBody is the payload written for failures other than NOT_FOUND.
type ErrorBody struct {
	Error *appErrors.Error `json:"error"`
}

// JSON writes data as the bare response body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// OK responds with HTTP 200.
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error converts err to its HTTP status. NOT_FOUND carries no body.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	if appErrors.IsNotFound(appErr) {
		c.Status(appErr.Status)
		return
	}
	c.JSON(appErr.Status, ErrorBody{Error: appErr})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
