package uploads

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Storage persists an uploaded file and returns the public URL to record in
// the content store. Implementations must either store the bytes and return a
// working URL or return an error — a broken URL must never reach the store.
type Storage interface {
	Save(ctx context.Context, folder, filename string, data []byte, contentType string) (url string, err error)
}

// UniqueFilename builds the stored filename for an upload: a millisecond
// timestamp prefix plus the original name with spaces replaced by dashes.
// Collision avoidance lives here, at the upload boundary, not in the store.
func UniqueFilename(original string) string {
	name := strings.ReplaceAll(original, " ", "-")
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), name)
}
