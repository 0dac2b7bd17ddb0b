package controllers

import (
    "net/http"
    "strconv"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"

    "github.com/preceptoria/backend/internal/middleware"
    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/services"
)

type AuthController struct {
    Users     *services.UserService
    JWTSecret string
    ExpiresIn time.Duration
}

type loginRequest struct {
    Document string `json:"document" binding:"required"`
}

// Login resolves a document number to a user and mints the session token.
// There is no password; the document lookup is the whole handshake.
func (a *AuthController) Login(c *gin.Context) {
    var req loginRequest
    if err := c.ShouldBindJSON(&req); err != nil {
        c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
        return
    }

    user, err := a.Users.GetByDocument(c.Request.Context(), req.Document)
    if err != nil {
        respondError(c, err)
        return
    }

    token, err := a.issueToken(user)
    if err != nil {
        c.JSON(http.StatusInternalServerError, gin.H{"error": "token issue failed"})
        return
    }

    c.JSON(http.StatusOK, gin.H{
        "access_token": token,
        "token_type":   "Bearer",
        "expires_in":   int(a.ExpiresIn.Seconds()),
        "user":         user,
    })
}

func (a *AuthController) Me(c *gin.Context) {
    c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// Logout exists for the client's session lifecycle; the token is stateless so
// there is nothing to revoke server-side.
func (a *AuthController) Logout(c *gin.Context) {
    c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (a *AuthController) issueToken(user models.User) (string, error) {
    now := time.Now().UTC()
    claims := middleware.Claims{
        UserID:   user.ID,
        Role:     user.Role,
        Document: user.Document,
        RegisteredClaims: jwt.RegisteredClaims{
            Issuer:    "attendance-backend",
            Subject:   strconv.FormatUint(uint64(user.ID), 10),
            IssuedAt:  jwt.NewNumericDate(now),
            ExpiresAt: jwt.NewNumericDate(now.Add(a.ExpiresIn)),
        },
    }
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    return token.SignedString([]byte(a.JWTSecret))
}
