// Package repository defines the persistence boundary. Services depend only on
// these interfaces; gormrepo implements them against Postgres and memory
// implements them for tests.
package repository

import (
    "context"
    "errors"

    "gorm.io/datatypes"

    "github.com/preceptoria/backend/internal/models"
)

// ErrNotFound is returned by every lookup that matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique constraint would be violated.
var ErrDuplicate = errors.New("duplicate record")

type Users interface {
    GetByID(ctx context.Context, id uint) (models.User, error)
    GetByDocument(ctx context.Context, document string) (models.User, error)
    // List returns all users ordered by name.
    List(ctx context.Context) ([]models.User, error)
    ListByRole(ctx context.Context, role string) ([]models.User, error)
    Create(ctx context.Context, u *models.User) error
    Update(ctx context.Context, u *models.User) error
    Delete(ctx context.Context, id uint) error
    // ListCourseGroups returns the distinct non-empty course-group labels of
    // students, sorted.
    ListCourseGroups(ctx context.Context) ([]string, error)
}

type Courses interface {
    List(ctx context.Context) ([]models.Course, error)
    Get(ctx context.Context, id uint) (models.Course, error)
    Create(ctx context.Context, c *models.Course) error
    Update(ctx context.Context, c *models.Course) error
    // Delete removes the course, its membership rows and every attendance row
    // referencing it, atomically.
    Delete(ctx context.Context, id uint) error
    // ReplaceStudents swaps the full membership set of a course in one
    // transaction (delete-all-then-reinsert).
    ReplaceStudents(ctx context.Context, courseID uint, studentIDs []uint) error
    StudentIDs(ctx context.Context, courseID uint) ([]uint, error)
    ListForStudent(ctx context.Context, studentID uint) ([]models.Course, error)
    CourseIDsForStudent(ctx context.Context, studentID uint) ([]uint, error)
    // ListSubjects returns the distinct subject names across courses, sorted.
    ListSubjects(ctx context.Context) ([]string, error)
}

type Attendance interface {
    Get(ctx context.Context, id uint) (models.Attendance, error)
    // ListForStudent returns the student's records, newest date first.
    ListForStudent(ctx context.Context, studentID uint) ([]models.Attendance, error)
    // ListJustifiable returns the student's absent/late records, newest date
    // first. These are the candidates for certificate upload.
    ListJustifiable(ctx context.Context, studentID uint) ([]models.Attendance, error)
    ListForDate(ctx context.Context, date string) ([]models.Attendance, error)
    // Upsert inserts or, on conflict over (student_id, course_id, date),
    // updates the status. The stored row is written back to a.
    Upsert(ctx context.Context, a *models.Attendance) error
    Update(ctx context.Context, a *models.Attendance) error
    // Delete removes the row for (studentID, date, courseID) if present.
    Delete(ctx context.Context, studentID uint, date string, courseID uint) error
    // ListPendingCertificates returns records whose certificate awaits review,
    // newest date first.
    ListPendingCertificates(ctx context.Context) ([]models.Attendance, error)
    // CountByStatus is a count-only query, no rows are fetched.
    CountByStatus(ctx context.Context, studentID uint, status string) (int64, error)
}

type News interface {
    // List returns items newest first.
    List(ctx context.Context) ([]models.NewsItem, error)
    Get(ctx context.Context, id uint) (models.NewsItem, error)
    Create(ctx context.Context, n *models.NewsItem) error
    Update(ctx context.Context, n *models.NewsItem) error
    Delete(ctx context.Context, id uint) error
}

type Settings interface {
    Get(ctx context.Context, key string) (models.Setting, error)
    Upsert(ctx context.Context, key string, value datatypes.JSON) error
}
