package controllers

import (
    "errors"
    "log"
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/preceptoria/backend/internal/httpmiddleware"
    "github.com/preceptoria/backend/internal/services"
)

// respondError maps the service error taxonomy to HTTP. Backend and storage
// causes are logged server-side and surfaced as generic messages.
func respondError(c *gin.Context, err error) {
    var notFound services.NotFoundError
    var validation services.ValidationError
    var conflict services.ConflictError
    var storageErr services.StorageError

    switch {
    case errors.As(err, &notFound):
        c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
    case errors.As(err, &validation):
        c.JSON(http.StatusBadRequest, gin.H{"error": validation.Error()})
    case errors.As(err, &conflict):
        c.JSON(http.StatusConflict, gin.H{"error": conflict.Error()})
    case errors.As(err, &storageErr):
        log.Printf("storage error rid=%s: %v", c.GetString(httpmiddleware.RequestIDKey), err)
        c.JSON(http.StatusBadGateway, gin.H{"error": "file upload failed"})
    default:
        log.Printf("backend error rid=%s: %v", c.GetString(httpmiddleware.RequestIDKey), err)
        c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
    }
}
