package storage

import (
    "context"
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestDiskSave(t *testing.T) {
    dir := t.TempDir()
    disk := NewDisk(dir, "http://localhost:8080/files/")

    url, err := disk.Save(context.Background(), "certificates/42_1700000000000.pdf", []byte("scan"), "application/pdf")
    require.NoError(t, err)
    assert.Equal(t, "http://localhost:8080/files/certificates/42_1700000000000.pdf", url)

    data, err := os.ReadFile(filepath.Join(dir, "certificates", "42_1700000000000.pdf"))
    require.NoError(t, err)
    assert.Equal(t, []byte("scan"), data)
}

func TestDiskSaveRejectsTraversal(t *testing.T) {
    dir := t.TempDir()
    disk := NewDisk(dir, "http://files.test")

    _, err := disk.Save(context.Background(), "../escape.txt", []byte("x"), "text/plain")
    require.NoError(t, err)

    // The cleaned path stays inside the root.
    _, statErr := os.Stat(filepath.Join(dir, "escape.txt"))
    assert.NoError(t, statErr)
    _, statErr = os.Stat(filepath.Join(filepath.Dir(dir), "escape.txt"))
    assert.True(t, os.IsNotExist(statErr))
}
