package middleware

import (
    "net/http"
    "strings"

    "github.com/gin-gonic/gin"
    "github.com/golang-jwt/jwt/v5"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
)

type Claims struct {
    UserID   uint   `json:"user_id"`
    Role     string `json:"role"`
    Document string `json:"document"`
    jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token and re-loads the user row per
// request, so deleted users are locked out immediately.
func AuthMiddleware(users repository.Users, secret string) gin.HandlerFunc {
    return func(c *gin.Context) {
        auth := c.GetHeader("Authorization")
        if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid authorization header"})
            return
        }
        tokenStr := strings.TrimSpace(auth[len("Bearer "):])

        claims := &Claims{}
        token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
            return []byte(secret), nil
        })
        if err != nil || !token.Valid {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
            return
        }

        user, err := users.GetByID(c.Request.Context(), claims.UserID)
        if err != nil {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
            return
        }

        c.Set("user", user)
        c.Next()
    }
}

// RequireRoles gates a route group; Admin passes any gate.
func RequireRoles(roles ...string) gin.HandlerFunc {
    allowed := map[string]struct{}{}
    for _, r := range roles {
        allowed[r] = struct{}{}
    }
    return func(c *gin.Context) {
        uVal, ok := c.Get("user")
        if !ok {
            c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
            return
        }
        user := uVal.(models.User)
        if _, ok := allowed[user.Role]; !ok {
            if user.Role != models.RoleAdmin {
                c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
                return
            }
        }
        c.Next()
    }
}

// CurrentUser returns the authenticated user set by AuthMiddleware.
func CurrentUser(c *gin.Context) models.User {
    uVal, _ := c.Get("user")
    user, _ := uVal.(models.User)
    return user
}
