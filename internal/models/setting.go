package models

import (
    "time"

    "gorm.io/datatypes"
)

// Setting is a free-form key/value document. The only key in use is
// "app_settings"; course-level absence limits live on Course.
type Setting struct {
    ID        uint           `gorm:"primaryKey"`
    Key       string         `gorm:"uniqueIndex;not null"`
    Value     datatypes.JSON `gorm:"type:jsonb"`
    CreatedAt time.Time
    UpdatedAt time.Time
}
