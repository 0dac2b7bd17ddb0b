// Package storage persists uploaded certificate files and hands back public
// URLs. Disk is the default backend; Cloudinary is used when configured.
package storage

import (
    "context"
)

type Store interface {
    // Save writes the object under path (slash-separated key, e.g.
    // "certificates/42_1700000000000.pdf") and returns its public URL.
    Save(ctx context.Context, path string, data []byte, contentType string) (string, error)
}
