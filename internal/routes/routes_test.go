package routes

import (
    "bytes"
    "context"
    "encoding/json"
    "net/http"
    "net/http/httptest"
    "strconv"
    "testing"
    "time"

    "github.com/gin-gonic/gin"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/preceptoria/backend/internal/cache"
    "github.com/preceptoria/backend/internal/config"
    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository/memory"
    "github.com/preceptoria/backend/internal/services"
    "github.com/preceptoria/backend/internal/storage"
)

type routerEnv struct {
    router *gin.Engine
    users  *memory.Users
}

func newRouterEnv(t *testing.T) *routerEnv {
    t.Helper()
    gin.SetMode(gin.TestMode)

    db := memory.Open()
    users := memory.NewUsers(db)
    courses := memory.NewCourses(db)
    attendance := memory.NewAttendance(db)
    news := memory.NewNews(db)
    settings := memory.NewSettings(db)
    disabled := cache.New("")

    cfg := &config.Config{
        JWTSecret: "test-secret",
        AccessTTL: time.Hour,
    }

    r := gin.New()
    Register(r, Deps{
        Cfg:            cfg,
        Users:          users,
        UserSvc:        services.NewUserService(users),
        CourseSvc:      services.NewCourseService(courses, users, disabled),
        AttendanceSvc:  services.NewAttendanceService(attendance, courses, users, disabled),
        CertificateSvc: services.NewCertificateService(attendance, storage.NewDisk(t.TempDir(), "http://files.test"), disabled),
        NewsSvc:        services.NewNewsService(news, users),
        ReportSvc:      services.NewReportService(users, attendance, disabled),
        SettingsSvc:    services.NewSettingsService(settings),
    })
    return &routerEnv{router: r, users: users}
}

func (env *routerEnv) addUser(t *testing.T, name, document, role string) models.User {
    t.Helper()
    u := models.User{Name: name, Document: document, Role: role}
    require.NoError(t, env.users.Create(context.Background(), &u))
    return u
}

func (env *routerEnv) login(t *testing.T, document string) string {
    t.Helper()
    body, _ := json.Marshal(gin.H{"document": document})
    w := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
    req.Header.Set("Content-Type", "application/json")
    env.router.ServeHTTP(w, req)
    require.Equal(t, http.StatusOK, w.Code, w.Body.String())

    var resp struct {
        AccessToken string `json:"access_token"`
    }
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
    require.NotEmpty(t, resp.AccessToken)
    return resp.AccessToken
}

func (env *routerEnv) do(method, path, token string) *httptest.ResponseRecorder {
    w := httptest.NewRecorder()
    req := httptest.NewRequest(method, path, nil)
    if token != "" {
        req.Header.Set("Authorization", "Bearer "+token)
    }
    env.router.ServeHTTP(w, req)
    return w
}

func TestLoginUnknownDocument(t *testing.T) {
    env := newRouterEnv(t)
    body, _ := json.Marshal(gin.H{"document": "99999999"})
    w := httptest.NewRecorder()
    req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
    req.Header.Set("Content-Type", "application/json")
    env.router.ServeHTTP(w, req)
    assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginAndMe(t *testing.T) {
    env := newRouterEnv(t)
    student := env.addUser(t, "Ana", "45111222", models.RoleStudent)

    token := env.login(t, "45111222")
    w := env.do(http.MethodGet, "/api/v1/auth/me", token)
    require.Equal(t, http.StatusOK, w.Code)

    var me models.User
    require.NoError(t, json.Unmarshal(w.Body.Bytes(), &me))
    assert.Equal(t, student.ID, me.ID)
    assert.Equal(t, models.RoleStudent, me.Role)
}

func TestMissingTokenUnauthorized(t *testing.T) {
    env := newRouterEnv(t)
    w := env.do(http.MethodGet, "/api/v1/news", "")
    assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeletedUserLockedOut(t *testing.T) {
    env := newRouterEnv(t)
    student := env.addUser(t, "Ana", "45111222", models.RoleStudent)
    token := env.login(t, "45111222")

    require.NoError(t, env.users.Delete(context.Background(), student.ID))

    w := env.do(http.MethodGet, "/api/v1/auth/me", token)
    assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStudentForbiddenFromStaffRoutes(t *testing.T) {
    env := newRouterEnv(t)
    env.addUser(t, "Ana", "45111222", models.RoleStudent)
    token := env.login(t, "45111222")

    for _, path := range []string{
        "/api/v1/students",
        "/api/v1/certificates/pending",
        "/api/v1/reports/attendance-summary",
        "/api/v1/admin/users",
    } {
        w := env.do(http.MethodGet, path, token)
        assert.Equal(t, http.StatusForbidden, w.Code, path)
    }
}

func TestPreceptorForbiddenFromAdminRoutes(t *testing.T) {
    env := newRouterEnv(t)
    env.addUser(t, "Laura", "20111222", models.RolePreceptor)
    token := env.login(t, "20111222")

    assert.Equal(t, http.StatusOK, env.do(http.MethodGet, "/api/v1/students", token).Code)
    assert.Equal(t, http.StatusForbidden, env.do(http.MethodGet, "/api/v1/admin/users", token).Code)
}

func TestAdminPassesEveryGate(t *testing.T) {
    env := newRouterEnv(t)
    env.addUser(t, "Root", "00000000", models.RoleAdmin)
    token := env.login(t, "00000000")

    for _, path := range []string{
        "/api/v1/students",
        "/api/v1/certificates/pending",
        "/api/v1/admin/users",
        "/api/v1/admin/settings",
    } {
        w := env.do(http.MethodGet, path, token)
        assert.Equal(t, http.StatusOK, w.Code, path)
    }
}

func TestStudentCannotReadAnotherStudentsAttendance(t *testing.T) {
    env := newRouterEnv(t)
    env.addUser(t, "Ana", "45111222", models.RoleStudent)
    other := env.addUser(t, "Bruno", "45333444", models.RoleStudent)
    token := env.login(t, "45111222")

    w := env.do(http.MethodGet, "/api/v1/students/"+itoa(other.ID)+"/attendance", token)
    assert.Equal(t, http.StatusForbidden, w.Code)
}

func itoa(id uint) string {
    return strconv.FormatUint(uint64(id), 10)
}
