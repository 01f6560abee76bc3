package storage

import (
	"context"
	"io"
)

// ReceiptStore stores raw receipt bytes and returns a stable retrievable
// URL. Uploads are on the critical path of request creation; a failure here
// aborts the whole create with no local writes to undo.
type ReceiptStore interface {
	Upload(ctx context.Context, fileName string, reader io.Reader, size int64, contentType string) (string, error)
}
