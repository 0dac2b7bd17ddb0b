package models

import (
    "database/sql/driver"
    "fmt"
    "time"
)

// DateLayout is the calendar-day granularity used by every attendance record.
const DateLayout = "2006-01-02"

// Date is a calendar day serialized as YYYY-MM-DD. Postgres DATE columns come
// back from the driver as time.Time; Scan normalizes them so the JSON value is
// identical on every backend.
type Date string

func (d *Date) Scan(value any) error {
    switch v := value.(type) {
    case nil:
        *d = ""
    case time.Time:
        *d = Date(v.Format(DateLayout))
    case string:
        *d = Date(v)
    case []byte:
        *d = Date(v)
    default:
        return fmt.Errorf("cannot scan %T into Date", value)
    }
    return nil
}

func (d Date) Value() (driver.Value, error) {
    return string(d), nil
}
