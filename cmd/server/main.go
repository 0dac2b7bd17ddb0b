package main

import (
    "log"
    "net/http"
    "os"

    "github.com/gin-gonic/gin"
    "github.com/joho/godotenv"
    "gorm.io/gorm"

    "github.com/preceptoria/backend/internal/cache"
    "github.com/preceptoria/backend/internal/config"
    "github.com/preceptoria/backend/internal/database"
    "github.com/preceptoria/backend/internal/httpmiddleware"
    "github.com/preceptoria/backend/internal/metrics"
    "github.com/preceptoria/backend/internal/repository/gormrepo"
    "github.com/preceptoria/backend/internal/routes"
    "github.com/preceptoria/backend/internal/services"
    "github.com/preceptoria/backend/internal/storage"
)

func main() {
    // Load .env (non-fatal if missing in production)
    _ = godotenv.Load()

    cfg := config.Load()

    if cfg.Env == "production" || cfg.Env == "prod" {
        gin.SetMode(gin.ReleaseMode)
    }

    db, err := database.Connect(cfg)
    if err != nil {
        log.Fatalf("database connection failed: %v", err)
    }
    if err := database.Migrate(db); err != nil {
        log.Fatalf("database migration failed: %v", err)
    }
    if err := database.SeedAdmin(db, cfg); err != nil {
        log.Fatalf("admin seed failed: %v", err)
    }
    if err := database.SeedDemo(db, cfg); err != nil {
        log.Fatalf("demo seed failed: %v", err)
    }

    redisCache := cache.New(cfg.RedisAddr)

    var fileStore storage.Store
    var disk *storage.Disk
    if cfg.CloudinaryConfigured() {
        fileStore = storage.NewCloudinary(
            cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
        log.Println("Cloudinary storage configured:", cfg.CloudinaryCloudName)
    } else {
        disk = storage.NewDisk(cfg.UploadDir, cfg.PublicBaseURL)
        fileStore = disk
    }

    usersRepo := gormrepo.NewUsers(db)
    coursesRepo := gormrepo.NewCourses(db)
    attendanceRepo := gormrepo.NewAttendance(db)
    newsRepo := gormrepo.NewNews(db)
    settingsRepo := gormrepo.NewSettings(db)

    deps := routes.Deps{
        Cfg:            cfg,
        Users:          usersRepo,
        UserSvc:        services.NewUserService(usersRepo),
        CourseSvc:      services.NewCourseService(coursesRepo, usersRepo, redisCache),
        AttendanceSvc:  services.NewAttendanceService(attendanceRepo, coursesRepo, usersRepo, redisCache),
        CertificateSvc: services.NewCertificateService(attendanceRepo, fileStore, redisCache),
        NewsSvc:        services.NewNewsService(newsRepo, usersRepo),
        ReportSvc:      services.NewReportService(usersRepo, attendanceRepo, redisCache),
        SettingsSvc:    services.NewSettingsService(settingsRepo),
    }

    r := gin.New()
    r.Use(gin.Recovery())
    r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
        SkipPaths: []string{"/healthz", "/metrics"},
    }))
    r.Use(corsMiddleware())
    r.Use(securityHeaders())
    r.Use(httpmiddleware.RequestID())
    r.Use(httpmiddleware.NewTokenBucket(cfg.RateLimitPerMin, cfg.RateLimitPerMin).GinMiddleware())
    r.Use(metrics.Middleware())

    r.GET("/metrics", gin.WrapH(metrics.Handler()))
    r.GET("/healthz", healthz(db, redisCache))

    if disk != nil {
        r.Static("/files", disk.Dir())
    }

    routes.Register(r, deps)

    if err := r.Run(":" + cfg.Port); err != nil {
        log.Println("server exited with error:", err)
        os.Exit(1)
    }
}

func healthz(db *gorm.DB, redisCache *cache.Cache) gin.HandlerFunc {
    return func(c *gin.Context) {
        dbHealthy := false
        if sqlDB, err := db.DB(); err == nil {
            dbHealthy = sqlDB.PingContext(c.Request.Context()) == nil
        }
        status := http.StatusOK
        if !dbHealthy {
            status = http.StatusServiceUnavailable
        }
        body := gin.H{"status": "ok", "db": dbHealthy}
        if redisCache.Enabled() {
            body["redis"] = redisCache.Healthy(c.Request.Context())
        }
        c.JSON(status, body)
    }
}

func corsMiddleware() gin.HandlerFunc {
    return func(c *gin.Context) {
        c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
        c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
        c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
        if c.Request.Method == http.MethodOptions {
            c.AbortWithStatus(http.StatusNoContent)
            return
        }
        c.Next()
    }
}

func securityHeaders() gin.HandlerFunc {
    return func(c *gin.Context) {
        c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
        c.Writer.Header().Set("X-Frame-Options", "DENY")
        c.Next()
    }
}
