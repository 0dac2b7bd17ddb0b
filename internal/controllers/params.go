package controllers

import (
    "strconv"

    "github.com/gin-gonic/gin"
)

// idParam parses a numeric path parameter, reporting false after writing the
// 400 response.
func idParam(c *gin.Context, name string) (uint, bool) {
    raw := c.Param(name)
    id, err := strconv.ParseUint(raw, 10, 32)
    if err != nil || id == 0 {
        c.JSON(400, gin.H{"error": "invalid " + name})
        return 0, false
    }
    return uint(id), true
}
