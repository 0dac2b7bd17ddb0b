package services

import (
    "context"
    "time"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
)

// AttendanceService records daily per-course attendance. Present is stored as
// the absence of a row; marking present deletes.
type AttendanceService struct {
    attendance repository.Attendance
    courses    repository.Courses
    users      repository.Users
    cache      Cache
}

func NewAttendanceService(attendance repository.Attendance, courses repository.Courses, users repository.Users, c Cache) *AttendanceService {
    return &AttendanceService{attendance: attendance, courses: courses, users: users, cache: c}
}

// SetAttendance applies one mark for (student, date), scoped to courseID when
// given, else across every course the student is enrolled in. Returns the
// rows written (empty for present).
//
// The bulk path is best-effort per course: rows written before a failure
// stand, matching the recorder's original no-transaction semantics.
func (s *AttendanceService) SetAttendance(ctx context.Context, studentID uint, date, status string, courseID *uint) ([]models.Attendance, error) {
    if _, err := time.Parse(models.DateLayout, date); err != nil {
        return nil, ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
    }
    switch status {
    case models.StatusPresent, models.StatusAbsent, models.StatusLate:
    default:
        return nil, ValidationError{Field: "status", Message: "must be present, absent or late"}
    }

    student, err := s.users.GetByID(ctx, studentID)
    if err != nil {
        return nil, wrapRepo(err, "student", "loading student")
    }
    if student.Role != models.RoleStudent {
        return nil, ValidationError{Field: "studentId", Message: "user is not a student"}
    }

    defer s.cache.Delete(ctx, summaryCacheKey)

    courseIDs := []uint{}
    if courseID != nil {
        if _, err := s.courses.Get(ctx, *courseID); err != nil {
            return nil, wrapRepo(err, "course", "loading course")
        }
        courseIDs = append(courseIDs, *courseID)
    } else {
        courseIDs, err = s.courses.CourseIDsForStudent(ctx, studentID)
        if err != nil {
            return nil, wrapRepo(err, "course", "listing enrollments")
        }
    }

    if status == models.StatusPresent {
        for _, cid := range courseIDs {
            if err := s.attendance.Delete(ctx, studentID, date, cid); err != nil {
                return nil, wrapRepo(err, "attendance", "clearing attendance")
            }
        }
        return []models.Attendance{}, nil
    }

    written := make([]models.Attendance, 0, len(courseIDs))
    for _, cid := range courseIDs {
        rec := models.Attendance{
            StudentID: studentID,
            CourseID:  cid,
            Date:      models.Date(date),
            Status:    status,
        }
        if err := s.attendance.Upsert(ctx, &rec); err != nil {
            return written, wrapRepo(err, "attendance", "saving attendance")
        }
        written = append(written, rec)
    }
    return written, nil
}

// ForDate returns every record of the day across students and courses.
func (s *AttendanceService) ForDate(ctx context.Context, date string) ([]models.Attendance, error) {
    if _, err := time.Parse(models.DateLayout, date); err != nil {
        return nil, ValidationError{Field: "date", Message: "must be YYYY-MM-DD"}
    }
    records, err := s.attendance.ListForDate(ctx, date)
    return records, wrapRepo(err, "attendance", "listing attendance")
}

// ForStudent returns the student's full history, newest first.
func (s *AttendanceService) ForStudent(ctx context.Context, studentID uint) ([]models.Attendance, error) {
    records, err := s.attendance.ListForStudent(ctx, studentID)
    return records, wrapRepo(err, "attendance", "listing attendance")
}

// Justifiable returns the student's absent/late records, the candidates for a
// certificate upload.
func (s *AttendanceService) Justifiable(ctx context.Context, studentID uint) ([]models.Attendance, error) {
    records, err := s.attendance.ListJustifiable(ctx, studentID)
    return records, wrapRepo(err, "attendance", "listing attendance")
}

// DailyStatus reduces one student's records for a single day to the flag the
// take-attendance view shows: any stored row means absent (a student late to
// one class and present in another still shows absent for the whole day).
func DailyStatus(records []models.Attendance) string {
    if len(records) == 0 {
        return models.StatusPresent
    }
    return models.StatusAbsent
}
