package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/preceptoria/backend/internal/middleware"
    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/services"
)

type AttendanceController struct {
    Attendance *services.AttendanceService
}

type setAttendanceRequest struct {
    StudentID uint   `json:"studentId" binding:"required"`
    Date      string `json:"date" binding:"required"`
    Status    string `json:"status" binding:"required"`
    CourseID  *uint  `json:"courseId"`
}

// Set records one attendance mark; without courseId it applies to every
// course the student is enrolled in.
func (ac *AttendanceController) Set(c *gin.Context) {
    var req setAttendanceRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    records, err := ac.Attendance.SetAttendance(c.Request.Context(), req.StudentID, req.Date, req.Status, req.CourseID)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, records)
}

func (ac *AttendanceController) ForDate(c *gin.Context) {
    date := c.Query("date")
    if date == "" {
        c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
        return
    }
    records, err := ac.Attendance.ForDate(c.Request.Context(), date)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, records)
}

// ForStudent returns a student's history. Students may only read their own.
func (ac *AttendanceController) ForStudent(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    if !ac.allowStudentAccess(c, id) {
        return
    }
    records, err := ac.Attendance.ForStudent(c.Request.Context(), id)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, records)
}

// Justifiable returns the student's absent/late records for the upload view.
func (ac *AttendanceController) Justifiable(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    if !ac.allowStudentAccess(c, id) {
        return
    }
    records, err := ac.Attendance.Justifiable(c.Request.Context(), id)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, records)
}

func (ac *AttendanceController) allowStudentAccess(c *gin.Context, studentID uint) bool {
    user := middleware.CurrentUser(c)
    if user.Role == models.RoleStudent && user.ID != studentID {
        c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
        return false
    }
    return true
}
