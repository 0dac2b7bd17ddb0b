package storage

import (
    "context"
    "fmt"
    "os"
    "path/filepath"
    "strings"
)

// Disk stores objects under a local directory served by the HTTP server at
// baseURL (e.g. http://localhost:8080/files).
type Disk struct {
    dir     string
    baseURL string
}

func NewDisk(dir, baseURL string) *Disk {
    return &Disk{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Dir returns the root directory, for mounting as a static route.
func (d *Disk) Dir() string { return d.dir }

func (d *Disk) Save(_ context.Context, path string, data []byte, _ string) (string, error) {
    clean := filepath.Clean("/" + path)
    full := filepath.Join(d.dir, clean)
    if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
        return "", fmt.Errorf("storage: create dir failed: %w", err)
    }
    if err := os.WriteFile(full, data, 0o644); err != nil {
        return "", fmt.Errorf("storage: write file failed: %w", err)
    }
    return d.baseURL + strings.ReplaceAll(clean, string(filepath.Separator), "/"), nil
}
