package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"mdf_gestor/internal/service"
)

// abortWithError renders the error envelope fixed by the API contract and
// picks the status from the service error taxonomy.
func abortWithError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{
		"message": message,
		"error":   err.Error(),
	})
}

// abortBadRequest renders a binding/parameter failure.
func abortBadRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": message,
		"error":   err.Error(),
	})
}
