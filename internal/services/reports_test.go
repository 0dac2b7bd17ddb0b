package services

import (
    "context"
    "encoding/json"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/preceptoria/backend/internal/cache"
    "github.com/preceptoria/backend/internal/models"
)

func TestSummaryWeightsLatesAsHalf(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()

    heavy := env.createStudent(t, "Ana", "45111222")
    light := env.createStudent(t, "Bruno", "45333444")
    clean := env.createStudent(t, "Carla", "45555666")
    env.createUser(t, "Laura", "20111222", models.RolePreceptor) // staff never appear

    course := env.createCourse(t, "Mathematics", heavy.ID, light.ID, clean.ID)

    for _, date := range []string{"2024-08-01", "2024-08-02"} {
        _, err := env.attendanceSvc.SetAttendance(ctx, heavy.ID, date, models.StatusAbsent, uintPtr(course.ID))
        require.NoError(t, err)
    }
    _, err := env.attendanceSvc.SetAttendance(ctx, heavy.ID, "2024-08-03", models.StatusLate, uintPtr(course.ID))
    require.NoError(t, err)

    _, err = env.attendanceSvc.SetAttendance(ctx, light.ID, "2024-08-01", models.StatusLate, uintPtr(course.ID))
    require.NoError(t, err)

    summaries, err := env.reportSvc.Summary(ctx)
    require.NoError(t, err)
    require.Len(t, summaries, 3)

    byID := map[uint]StudentSummary{}
    for _, s := range summaries {
        byID[s.StudentID] = s
    }
    assert.Equal(t, 2.5, byID[heavy.ID].AbsenceCount)
    assert.Equal(t, 0.5, byID[light.ID].AbsenceCount)
    assert.Equal(t, 0.0, byID[clean.ID].AbsenceCount, "zero-record students are included")

    // Sorted descending by count.
    assert.Equal(t, heavy.ID, summaries[0].StudentID)
    assert.Equal(t, light.ID, summaries[1].StudentID)
}

// mapCache implements Cache over a plain map, so tests can observe what a
// configured redis would hold.
type mapCache struct {
    entries map[string][]byte
}

func newMapCache() *mapCache {
    return &mapCache{entries: map[string][]byte{}}
}

func (m *mapCache) GetJSON(_ context.Context, key string, v any) bool {
    data, ok := m.entries[key]
    if !ok {
        return false
    }
    return json.Unmarshal(data, v) == nil
}

func (m *mapCache) SetJSON(_ context.Context, key string, v any, _ time.Duration) {
    if data, err := json.Marshal(v); err == nil {
        m.entries[key] = data
    }
}

func (m *mapCache) Delete(_ context.Context, keys ...string) {
    for _, k := range keys {
        delete(m.entries, k)
    }
}

func TestApprovalEvictsCachedSummary(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    shared := newMapCache()
    reportSvc := NewReportService(env.users, env.attendance, shared)
    certSvc := NewCertificateService(env.attendance, newFakeStore(), shared)

    student := env.createStudent(t, "Ana", "45111222")
    admin := env.createUser(t, "Root", "00000000", models.RoleAdmin)
    course := env.createCourse(t, "Mathematics", student.ID)
    rec := env.createAbsence(t, env.attendanceSvc, student.ID, course.ID, "2024-08-01", models.StatusAbsent)

    before, err := reportSvc.Summary(ctx)
    require.NoError(t, err)
    require.Len(t, before, 1)
    require.Equal(t, 1.0, before[0].AbsenceCount)
    require.Contains(t, shared.entries, summaryCacheKey)

    _, err = certSvc.Upload(ctx, rec.ID, CertificateUpload{
        Filename: "x.pdf", ContentType: "application/pdf", Data: []byte("scan"),
    })
    require.NoError(t, err)
    _, err = certSvc.Approve(ctx, rec.ID, admin.ID)
    require.NoError(t, err)

    after, err := reportSvc.Summary(ctx)
    require.NoError(t, err)
    require.Len(t, after, 1)
    assert.Equal(t, 0.0, after[0].AbsenceCount, "the cached leaderboard must not outlive the approval")
}

func TestSummaryIgnoresJustified(t *testing.T) {
    env := newTestEnv(t)
    ctx := context.Background()
    certSvc := NewCertificateService(env.attendance, newFakeStore(), cache.New(""))

    student := env.createStudent(t, "Diego", "45777888")
    admin := env.createUser(t, "Root", "00000000", models.RoleAdmin)
    course := env.createCourse(t, "History", student.ID)

    rec := env.createAbsence(t, env.attendanceSvc, student.ID, course.ID, "2024-08-01", models.StatusAbsent)
    _, err := certSvc.Upload(ctx, rec.ID, CertificateUpload{
        Filename: "x.pdf", ContentType: "application/pdf", Data: []byte("scan"),
    })
    require.NoError(t, err)
    _, err = certSvc.Approve(ctx, rec.ID, admin.ID)
    require.NoError(t, err)

    summaries, err := env.reportSvc.Summary(ctx)
    require.NoError(t, err)
    require.Len(t, summaries, 1)
    assert.Equal(t, 0.0, summaries[0].AbsenceCount, "justified absences do not count")
}
