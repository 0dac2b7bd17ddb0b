package services

import (
    "context"
    "fmt"
    "time"

    "github.com/preceptoria/backend/internal/models"
    "github.com/preceptoria/backend/internal/repository"
    "github.com/preceptoria/backend/internal/storage"
)

// MaxCertificateSize is the upload ceiling (5 MiB).
const MaxCertificateSize = 5 << 20

var certificateExtensions = map[string]string{
    "image/jpeg":      "jpg",
    "image/png":       "png",
    "application/pdf": "pdf",
}

// CertificateUpload is a justification file as received from the client.
type CertificateUpload struct {
    Filename    string
    ContentType string
    Data        []byte
}

// CertificateService drives the justification workflow:
// none → pending → approved | rejected, with rejected allowing re-upload.
type CertificateService struct {
    attendance repository.Attendance
    files      storage.Store
    cache      Cache
}

func NewCertificateService(attendance repository.Attendance, files storage.Store, c Cache) *CertificateService {
    return &CertificateService{attendance: attendance, files: files, cache: c}
}

// Upload validates the file, stores it and moves the record's certificate to
// pending. The attendance row is only touched after the file is stored.
func (s *CertificateService) Upload(ctx context.Context, attendanceID uint, up CertificateUpload) (models.Attendance, error) {
    ext, ok := certificateExtensions[up.ContentType]
    if !ok {
        return models.Attendance{}, ValidationError{Field: "file", Message: "only JPEG, PNG or PDF files are accepted"}
    }
    if len(up.Data) == 0 {
        return models.Attendance{}, ValidationError{Field: "file", Message: "file is empty"}
    }
    if len(up.Data) > MaxCertificateSize {
        return models.Attendance{}, ValidationError{Field: "file", Message: "file exceeds 5 MiB"}
    }

    rec, err := s.attendance.Get(ctx, attendanceID)
    if err != nil {
        return models.Attendance{}, wrapRepo(err, "attendance record", "loading attendance")
    }
    if rec.Status != models.StatusAbsent && rec.Status != models.StatusLate {
        return models.Attendance{}, ValidationError{Message: "only absences and lates can be justified"}
    }
    if rec.CertificateStatus != nil && *rec.CertificateStatus == models.CertificateApproved {
        return models.Attendance{}, ConflictError{Message: "certificate already approved"}
    }

    path := fmt.Sprintf("certificates/%d_%d.%s", attendanceID, time.Now().UnixMilli(), ext)
    url, err := s.files.Save(ctx, path, up.Data, up.ContentType)
    if err != nil {
        return models.Attendance{}, StorageError{Op: "upload", Err: err}
    }

    pending := models.CertificatePending
    rec.CertificateURL = &url
    rec.CertificateStatus = &pending
    rec.VerifiedBy = nil
    rec.VerifiedAt = nil
    rec.RejectionReason = nil
    if err := s.attendance.Update(ctx, &rec); err != nil {
        return models.Attendance{}, wrapRepo(err, "attendance record", "saving certificate")
    }
    return rec, nil
}

// Pending returns the reviewer queue, newest date first.
func (s *CertificateService) Pending(ctx context.Context) ([]models.Attendance, error) {
    records, err := s.attendance.ListPendingCertificates(ctx)
    return records, wrapRepo(err, "attendance", "listing pending certificates")
}

// Approve marks the certificate approved and forces the parent record to
// justified. Re-approval just rewrites the same fields.
func (s *CertificateService) Approve(ctx context.Context, attendanceID, verifierID uint) (models.Attendance, error) {
    rec, err := s.attendance.Get(ctx, attendanceID)
    if err != nil {
        return models.Attendance{}, wrapRepo(err, "attendance record", "loading attendance")
    }
    if rec.CertificateURL == nil {
        return models.Attendance{}, ValidationError{Message: "record has no certificate to approve"}
    }

    // Approval rewrites the record's status, so the leaderboard changes.
    defer s.cache.Delete(ctx, summaryCacheKey)

    approved := models.CertificateApproved
    now := time.Now().UTC()
    rec.CertificateStatus = &approved
    rec.VerifiedBy = &verifierID
    rec.VerifiedAt = &now
    rec.Status = models.StatusJustified
    if err := s.attendance.Update(ctx, &rec); err != nil {
        return models.Attendance{}, wrapRepo(err, "attendance record", "approving certificate")
    }
    return rec, nil
}

// Reject requires a reason and leaves the parent status untouched so the
// student still counts as absent/late and can re-upload.
func (s *CertificateService) Reject(ctx context.Context, attendanceID, verifierID uint, reason string) (models.Attendance, error) {
    if reason == "" {
        return models.Attendance{}, ValidationError{Field: "reason", Message: "rejection reason is required"}
    }
    rec, err := s.attendance.Get(ctx, attendanceID)
    if err != nil {
        return models.Attendance{}, wrapRepo(err, "attendance record", "loading attendance")
    }
    if rec.CertificateURL == nil {
        return models.Attendance{}, ValidationError{Message: "record has no certificate to reject"}
    }

    defer s.cache.Delete(ctx, summaryCacheKey)

    rejected := models.CertificateRejected
    now := time.Now().UTC()
    rec.CertificateStatus = &rejected
    rec.VerifiedBy = &verifierID
    rec.VerifiedAt = &now
    rec.RejectionReason = &reason
    if err := s.attendance.Update(ctx, &rec); err != nil {
        return models.Attendance{}, wrapRepo(err, "attendance record", "rejecting certificate")
    }
    return rec, nil
}
