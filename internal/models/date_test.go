package models

import (
    "encoding/json"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestDateScanNormalizesDriverTypes(t *testing.T) {
    var d Date

    require.NoError(t, d.Scan(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)))
    assert.Equal(t, Date("2024-08-01"), d)

    require.NoError(t, d.Scan("2024-08-05"))
    assert.Equal(t, Date("2024-08-05"), d)

    require.NoError(t, d.Scan([]byte("2024-08-09")))
    assert.Equal(t, Date("2024-08-09"), d)

    require.NoError(t, d.Scan(nil))
    assert.Equal(t, Date(""), d)

    assert.Error(t, d.Scan(42))
}

func TestDateValue(t *testing.T) {
    v, err := Date("2024-08-01").Value()
    require.NoError(t, err)
    assert.Equal(t, "2024-08-01", v)
}

func TestDateJSON(t *testing.T) {
    data, err := json.Marshal(Attendance{Date: Date("2024-08-01")})
    require.NoError(t, err)
    assert.Contains(t, string(data), `"date":"2024-08-01"`)
}
