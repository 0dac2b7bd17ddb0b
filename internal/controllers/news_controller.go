package controllers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "github.com/preceptoria/backend/internal/services"
)

type NewsController struct {
    News *services.NewsService
}

type newsRequest struct {
    Title    string `json:"title" binding:"required"`
    Content  string `json:"content" binding:"required"`
    AuthorID uint   `json:"authorId" binding:"required"`
}

func (nc *NewsController) List(c *gin.Context) {
    posts, err := nc.News.List(c.Request.Context())
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, posts)
}

func (nc *NewsController) Create(c *gin.Context) {
    var req newsRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    post, err := nc.News.Create(c.Request.Context(), req.Title, req.Content, req.AuthorID)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusCreated, post)
}

func (nc *NewsController) Update(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    var req newsRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }
    post, err := nc.News.Update(c.Request.Context(), id, req.Title, req.Content, req.AuthorID)
    if err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, post)
}

func (nc *NewsController) Delete(c *gin.Context) {
    id, ok := idParam(c, "id")
    if !ok {
        return
    }
    if err := nc.News.Delete(c.Request.Context(), id); err != nil {
        respondError(c, err)
        return
    }
    c.JSON(http.StatusOK, gin.H{"id": id})
}
