package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/preceptoria/backend/internal/services"
)

type SettingsController struct {
    Settings *services.SettingsService
}

func (sc *SettingsController) Get(c *gin.Context) {
    values, err := sc.Settings.Get(c.Request.Context())
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, values)
}

func (sc *SettingsController) Update(c *gin.Context) {
    var values map[string]any
    if err := c.ShouldBindJSON(&values); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    updated, err := sc.Settings.Update(c.Request.Context(), values)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, updated)
}
