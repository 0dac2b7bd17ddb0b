package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/preceptoria/backend/internal/services"
)

type ReportController struct {
    Reports *services.ReportService
}

// Summary returns the absence leaderboard: absences + 0.5*lates per student,
// sorted descending. Top-N views are derived by the caller.
func (rc *ReportController) Summary(c *gin.Context) {
    summaries, err := rc.Reports.Summary(c.Request.Context())
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, summaries)
}
