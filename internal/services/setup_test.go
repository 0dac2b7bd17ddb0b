package services

import (
    "context"
    "testing"

    "github.com/stretchr/testify/require"

    "github.com/preceptoria/backend/internal/cache"
    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository/memory"
)

type testEnv struct {
    users      *memory.Users
    courses    *memory.Courses
    attendance *memory.Attendance
    news       *memory.News
    settings   *memory.Settings

    userSvc       *UserService
    courseSvc     *CourseService
    attendanceSvc *AttendanceService
    newsSvc       *NewsService
    reportSvc     *ReportService
    settingsSvc   *SettingsService
}

func newTestEnv(t *testing.T) *testEnv {
    t.Helper()
    db := memory.Open()
    env := &testEnv{
        users:      memory.NewUsers(db),
        courses:    memory.NewCourses(db),
        attendance: memory.NewAttendance(db),
        news:       memory.NewNews(db),
        settings:   memory.NewSettings(db),
    }
    disabled := cache.New("")
    env.userSvc = NewUserService(env.users)
    env.courseSvc = NewCourseService(env.courses, env.users, disabled)
    env.attendanceSvc = NewAttendanceService(env.attendance, env.courses, env.users, disabled)
    env.newsSvc = NewNewsService(env.news, env.users)
    env.reportSvc = NewReportService(env.users, env.attendance, disabled)
    env.settingsSvc = NewSettingsService(env.settings)
    return env
}

func (env *testEnv) createUser(t *testing.T, name, document, role string) models.User {
    t.Helper()
    u := models.User{Name: name, Document: document, Role: role}
    require.NoError(t, env.users.Create(context.Background(), &u))
    return u
}

func (env *testEnv) createStudent(t *testing.T, name, document string) models.User {
    t.Helper()
    return env.createUser(t, name, document, models.RoleStudent)
}

func (env *testEnv) createCourse(t *testing.T, name string, studentIDs ...uint) models.Course {
    t.Helper()
    c := models.Course{Name: name, Subject: name, MaxAbsences: 15}
    require.NoError(t, env.courses.Create(context.Background(), &c))
    require.NoError(t, env.courses.ReplaceStudents(context.Background(), c.ID, studentIDs))
    return c
}

func uintPtr(v uint) *uint { return &v }
