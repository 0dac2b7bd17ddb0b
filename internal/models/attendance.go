package models

import (
    "time"
)

// Stored attendance statuses. Present is represented by the absence of a row,
// so it is valid as input to the recorder but never stored.
const (
    StatusPresent   = "present"
    StatusAbsent    = "absent"
    StatusLate      = "late"
    StatusJustified = "justified"
)

const (
    CertificatePending  = "pending"
    CertificateApproved = "approved"
    CertificateRejected = "rejected"
)

// Attendance is one (student, course, day) record. The certificate columns are
// only meaningful while Status is absent or late.
type Attendance struct {
    ID        uint   `gorm:"primaryKey" json:"id"`
    StudentID uint   `gorm:"not null;uniqueIndex:idx_attendance_key" json:"studentId"`
    CourseID  uint   `gorm:"not null;uniqueIndex:idx_attendance_key" json:"courseId"`
    Date      Date   `gorm:"type:date;not null;uniqueIndex:idx_attendance_key" json:"date"`
    Status    string `gorm:"not null" json:"status"`

    CertificateURL    *string    `gorm:"column:certificate_url" json:"certificateUrl,omitempty"`
    CertificateStatus *string    `gorm:"column:certificate_status" json:"certificateStatus,omitempty"`
    VerifiedBy        *uint      `gorm:"column:verified_by" json:"verifiedBy,omitempty"`
    VerifiedAt        *time.Time `gorm:"column:verified_at" json:"verifiedAt,omitempty"`
    RejectionReason   *string    `gorm:"column:rejection_reason" json:"rejectionReason,omitempty"`

    CreatedAt time.Time `json:"createdAt"`
    UpdatedAt time.Time `json:"updatedAt"`
}

func (Attendance) TableName() string { return "attendance" }

// HasPendingCertificate reports whether the record sits in the reviewer queue.
func (a Attendance) HasPendingCertificate() bool {
    return a.CertificateStatus != nil && *a.CertificateStatus == CertificatePending
}
