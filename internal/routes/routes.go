package routes

import (
    "github.com/gin-gonic/gin"

    "github.com/preceptoria/backend/internal/config"
    "github.com/preceptoria/backend/internal/controllers"
    "github.com/preceptoria/backend/internal/middleware"
    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
    "github.com/preceptoria/backend/internal/services"
)

// Deps carries everything the route tree needs.
type Deps struct {
    Cfg *config.Config

    // Users backs the auth middleware's per-request user lookup.
    Users repository.Users

    UserSvc        *services.UserService
    CourseSvc      *services.CourseService
    AttendanceSvc  *services.AttendanceService
    CertificateSvc *services.CertificateService
    NewsSvc        *services.NewsService
    ReportSvc      *services.ReportService
    SettingsSvc    *services.SettingsService
}

func Register(r *gin.Engine, d Deps) {
    authCtrl := &controllers.AuthController{
        Users:     d.UserSvc,
        JWTSecret: d.Cfg.JWTSecret,
        ExpiresIn: d.Cfg.AccessTTL,
    }
    userCtrl := &controllers.UserController{Users: d.UserSvc}
    courseCtrl := &controllers.CourseController{Courses: d.CourseSvc}
    attendanceCtrl := &controllers.AttendanceController{Attendance: d.AttendanceSvc}
    certificateCtrl := &controllers.CertificateController{
        Certificates: d.CertificateSvc,
        Attendance:   d.AttendanceSvc,
    }
    newsCtrl := &controllers.NewsController{News: d.NewsSvc}
    reportCtrl := &controllers.ReportController{Reports: d.ReportSvc}
    settingsCtrl := &controllers.SettingsController{Settings: d.SettingsSvc}

    // Public
    r.POST("/api/v1/auth/login", authCtrl.Login)

    authMW := middleware.AuthMiddleware(d.Users, d.Cfg.JWTSecret)
    api := r.Group("/api/v1", authMW)
    {
        api.GET("/auth/me", authCtrl.Me)
        api.POST("/auth/logout", authCtrl.Logout)

        // Readable by every authenticated role
        api.GET("/news", newsCtrl.List)
        api.GET("/courses", courseCtrl.List)
        api.GET("/courses/:id", courseCtrl.Get)
        api.GET("/course-groups", userCtrl.CourseGroups)
        api.GET("/subjects", courseCtrl.Subjects)

        // Student-scoped reads; controllers enforce self-access for students
        api.GET("/students/:id/attendance", attendanceCtrl.ForStudent)
        api.GET("/students/:id/attendance/justifiable", attendanceCtrl.Justifiable)
        api.GET("/students/:id/courses", courseCtrl.ForStudent)

        // Certificate upload is the student's side of the workflow
        api.POST("/attendance/:id/certificate",
            middleware.RequireRoles(models.RoleStudent), certificateCtrl.Upload)

        // Staff area (Preceptor; Admin passes every gate)
        staff := api.Group("", middleware.RequireRoles(models.RolePreceptor))
        {
            staff.GET("/students", userCtrl.Students)
            staff.PUT("/attendance", attendanceCtrl.Set)
            staff.GET("/attendance", attendanceCtrl.ForDate)
            staff.GET("/certificates/pending", certificateCtrl.Pending)
            staff.POST("/attendance/:id/certificate/approve", certificateCtrl.Approve)
            staff.POST("/attendance/:id/certificate/reject", certificateCtrl.Reject)
            staff.GET("/reports/attendance-summary", reportCtrl.Summary)

            staff.POST("/news", newsCtrl.Create)
            staff.PUT("/news/:id", newsCtrl.Update)
            staff.DELETE("/news/:id", newsCtrl.Delete)
        }

        // Admin-only
        admin := api.Group("/admin", middleware.RequireRoles(models.RoleAdmin))
        {
            admin.GET("/users", userCtrl.List)
            admin.POST("/users", userCtrl.Create)
            admin.PUT("/users/:id", userCtrl.Update)
            admin.DELETE("/users/:id", userCtrl.Delete)
            admin.POST("/users/import", userCtrl.ImportUsers)

            admin.POST("/courses", courseCtrl.Create)
            admin.PUT("/courses/:id", courseCtrl.Update)
            admin.DELETE("/courses/:id", courseCtrl.Delete)

            admin.GET("/settings", settingsCtrl.Get)
            admin.PUT("/settings", settingsCtrl.Update)
        }
    }
}
