package controllers

import (
    "io"
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/preceptoria/backend/internal/middleware"
    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/services"
)

type CertificateController struct {
    Certificates *services.CertificateService
    Attendance   *services.AttendanceService
}

// Upload attaches a justification file (multipart "file") to an absence/late
// record. Students may only justify their own records.
func (cc *CertificateController) Upload(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }

    user := middleware.CurrentUser(c)
    if user.Role == models.RoleStudent {
        records, err := cc.Attendance.ForStudent(c.Request.Context(), user.ID)
        if err != nil {
            respondError(c, err)
            return
        }
        owned := false
        for _, rec := range records {
            if rec.ID == id {
                owned = true
                break
            }
        }
        if !owned {
            c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
            return
        }
    }

    file, header, err := c.Request.FormFile("file")
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
        return
    }
    defer file.Close()

    // Hard cap one byte above the limit so oversize files fail validation
    // without buffering unbounded input.
    data, err := io.ReadAll(io.LimitReader(file, services.MaxCertificateSize+1))
    if err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": "read file failed"})
        return
    }

    contentType := header.Header.Get("Content-Type")
    record, err := cc.Certificates.Upload(c.Request.Context(), id, services.CertificateUpload{
        Filename:    header.Filename,
        ContentType: contentType,
        Data:        data,
    })
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, record)
}

// Pending returns the reviewer queue, newest date first.
func (cc *CertificateController) Pending(c *gin.Context) {
    records, err := cc.Certificates.Pending(c.Request.Context())
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, records)
}

func (cc *CertificateController) Approve(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    verifier := middleware.CurrentUser(c)
    record, err := cc.Certificates.Approve(c.Request.Context(), id, verifier.ID)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, record)
}

type rejectRequest struct {
    Reason string `json:"reason"`
}

func (cc *CertificateController) Reject(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    var req rejectRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    verifier := middleware.CurrentUser(c)
    record, err := cc.Certificates.Reject(c.Request.Context(), id, verifier.ID, req.Reason)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, record)
}
