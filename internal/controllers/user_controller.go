package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/services"
)

type UserController struct {
    Users *services.UserService
}

type userRequest struct {
    Name      string  `json:"name" binding:"required"`
    Document  string  `json:"document" binding:"required"`
    Role      string  `json:"role" binding:"required"`
    Course    string  `json:"course"`
    AvatarURL *string `json:"avatarUrl"`
}

func (u *UserController) List(c *gin.Context) {
    users, err := u.Users.List(c.Request.Context())
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, users)
}

func (u *UserController) Students(c *gin.Context) {
    students, err := u.Users.Students(c.Request.Context())
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, students)
}

func (u *UserController) Create(c *gin.Context) {
    var req userRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    user, err := u.Users.Create(c.Request.Context(), models.User{
        Name:        req.Name,
        Document:    req.Document,
        Role:        req.Role,
        CourseGroup: req.Course,
        AvatarURL:   req.AvatarURL,
    })
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusCreated, user)
}

func (u *UserController) Update(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    var req userRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    user, err := u.Users.Update(c.Request.Context(), models.User{
        ID:          id,
        Name:        req.Name,
        Document:    req.Document,
        Role:        req.Role,
        CourseGroup: req.Course,
        AvatarURL:   req.AvatarURL,
    })
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, user)
}

func (u *UserController) Delete(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    if err := u.Users.Delete(c.Request.Context(), id); err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, gin.H{"id": id})
}

func (u *UserController) CourseGroups(c *gin.Context) {
    groups, err := u.Users.CourseGroups(c.Request.Context())
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, groups)
}
