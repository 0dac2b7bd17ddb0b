package services

import (
    "context"
    "sort"
    "time"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
)

const (
    summaryCacheKey = "reports:attendance-summary"
    summaryCacheTTL = 60 * time.Second
)

// lateWeight: a late counts as half an absence. Fixed business rule.
const lateWeight = 0.5

// StudentSummary is one leaderboard row.
type StudentSummary struct {
    StudentID    uint    `json:"studentId"`
    Name         string  `json:"name"`
    Course       string  `json:"course,omitempty"`
    AbsenceCount float64 `json:"absenceCount"`
}

type ReportService struct {
    users      repository.Users
    attendance repository.Attendance
    cache      Cache
}

func NewReportService(users repository.Users, attendance repository.Attendance, c Cache) *ReportService {
    return &ReportService{users: users, attendance: attendance, cache: c}
}

// Summary computes absences + 0.5*lates per student via count-only queries and
// returns every student (zero-record ones included), sorted descending.
func (s *ReportService) Summary(ctx context.Context) ([]StudentSummary, error) {
    var cached []StudentSummary
    if s.cache.GetJSON(ctx, summaryCacheKey, &cached) {
        return cached, nil
    }

    students, err := s.users.ListByRole(ctx, models.RoleStudent)
    if err != nil {
        return nil, wrapRepo(err, "students", "listing students")
    }

    summaries := make([]StudentSummary, 0, len(students))
    for _, student := range students {
        absences, err := s.attendance.CountByStatus(ctx, student.ID, models.StatusAbsent)
        if err != nil {
            return nil, wrapRepo(err, "attendance", "counting absences")
        }
        lates, err := s.attendance.CountByStatus(ctx, student.ID, models.StatusLate)
        if err != nil {
            return nil, wrapRepo(err, "attendance", "counting lates")
        }
        summaries = append(summaries, StudentSummary{
            StudentID:    student.ID,
            Name:         student.Name,
            Course:       student.CourseGroup,
            AbsenceCount: float64(absences) + lateWeight*float64(lates),
        })
    }

    sort.SliceStable(summaries, func(i, j int) bool {
        return summaries[i].AbsenceCount > summaries[j].AbsenceCount
    })

    s.cache.SetJSON(ctx, summaryCacheKey, summaries, summaryCacheTTL)
    return summaries, nil
}
