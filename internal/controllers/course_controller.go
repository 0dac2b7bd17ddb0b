package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/preceptoria/backend/internal/middleware"
    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/services"
)

type CourseController struct {
    Courses *services.CourseService
}

type courseRequest struct {
    Name        string `json:"name" binding:"required"`
    Subject     string `json:"subject" binding:"required"`
    Classroom   string `json:"classroom"`
    Schedule    int    `json:"schedule"`
    MaxAbsences int    `json:"maxAbsences" binding:"required"`
    IconURL     string `json:"iconUrl"`
    Students    []uint `json:"students"`
}

func (cc *CourseController) List(c *gin.Context) {
    courses, err := cc.Courses.List(c.Request.Context())
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, courses)
}

func (cc *CourseController) Get(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    course, err := cc.Courses.Get(c.Request.Context(), id)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, course)
}

// ForStudent lists a student's enrollments. Students may only read their own.
func (cc *CourseController) ForStudent(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    user := middleware.CurrentUser(c)
    if user.Role == models.RoleStudent && user.ID != id {
        c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
        return
    }
    courses, err := cc.Courses.ForStudent(c.Request.Context(), id)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, courses)
}

func (cc *CourseController) Create(c *gin.Context) {
    var req courseRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    course, err := cc.Courses.Create(c.Request.Context(), models.Course{
        Name:        req.Name,
        Subject:     req.Subject,
        Classroom:   req.Classroom,
        Schedule:    req.Schedule,
        MaxAbsences: req.MaxAbsences,
        IconURL:     req.IconURL,
        Students:    req.Students,
    })
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusCreated, course)
}

func (cc *CourseController) Update(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    var req courseRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    course, err := cc.Courses.Update(c.Request.Context(), models.Course{
        ID:          id,
        Name:        req.Name,
        Subject:     req.Subject,
        Classroom:   req.Classroom,
        Schedule:    req.Schedule,
        MaxAbsences: req.MaxAbsences,
        IconURL:     req.IconURL,
        Students:    req.Students,
    })
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, course)
}

func (cc *CourseController) Delete(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    if err := cc.Courses.Delete(c.Request.Context(), id); err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, gin.H{"id": id})
}

func (cc *CourseController) Subjects(c *gin.Context) {
    subjects, err := cc.Courses.Subjects(c.Request.Context())
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, subjects)
}
