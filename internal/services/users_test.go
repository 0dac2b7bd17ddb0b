package services

import (
    "context"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/preceptoria/backend/internal/models"
)

func TestGetByDocument(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    created := env.createStudent(t, "Ana", "45111222")

    found, err := env.userSvc.GetByDocument(ctx, "45111222")
    require.NoError(t, err)
    assert.Equal(t, created.ID, found.ID)

    _, err = env.userSvc.GetByDocument(ctx, "99999999")
    var notFound NotFoundError
    assert.ErrorAs(t, err, &notFound)

    _, err = env.userSvc.GetByDocument(ctx, "  ")
    var validation ValidationError
    assert.ErrorAs(t, err, &validation)
}

func TestCreateUserDuplicateDocument(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    env.createStudent(t, "Ana", "45111222")

    _, err := env.userSvc.Create(ctx, models.User{
        Name: "Impostor", Document: "45111222", Role: models.RoleStudent,
    })
    var conflict ConflictError
    assert.ErrorAs(t, err, &conflict)
}

func TestCreateUserValidatesRole(t *testing.T) {
    env := newTestEnv(t)
    _, err := env.userSvc.Create(context.Background(), models.User{
        Name: "Ana", Document: "45111222", Role: "Principal",
    })
    var validation ValidationError
    assert.ErrorAs(t, err, &validation)
}

func TestCourseGroupsDistinctSorted(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()

    for _, u := range []models.User{
        {Name: "Ana", Document: "1", Role: models.RoleStudent, CourseGroup: "3B"},
        {Name: "Bruno", Document: "2", Role: models.RoleStudent, CourseGroup: "3A"},
        {Name: "Carla", Document: "3", Role: models.RoleStudent, CourseGroup: "3A"},
        {Name: "Laura", Document: "4", Role: models.RolePreceptor, CourseGroup: "staff"},
    } {
        _, err := env.userSvc.Create(ctx, u)
        require.NoError(t, err)
    }

    groups, err := env.userSvc.CourseGroups(ctx)
    require.NoError(t, err)
    assert.Equal(t, []string{"3A", "3B"}, groups)
}

func TestDeleteUserLeavesAttendanceOrphaned(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    student := env.createStudent(t, "Ana", "45111222")
    course := env.createCourse(t, "Mathematics", student.ID)

    _, err := env.attendanceSvc.SetAttendance(ctx, student.ID, "2024-08-01", models.StatusAbsent, uintPtr(course.ID))
    require.NoError(t, err)

    require.NoError(t, env.userSvc.Delete(ctx, student.ID))

    // No cascade: the attendance row survives the user.
    records, err := env.attendanceSvc.ForDate(ctx, "2024-08-01")
    require.NoError(t, err)
    assert.Len(t, records, 1)
}
