package controllers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

// respondError translates a service error into the HTTP surface. Services
// never pick status codes; this is the only place the mapping lives.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrDuplicate),
		errors.Is(err, services.ErrInvalidCredentials):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
