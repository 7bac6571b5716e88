package export

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Delivery hands a generated export to whatever the platform can do with
// it. The returned note is a user-facing description of what happened.
type Delivery interface {
	Deliver(ctx context.Context, f File) (note string, err error)
}

// DirDelivery writes exports into a directory. It is the server-side
// analogue of a browser download.
type DirDelivery struct {
	Dir string
}

func (d DirDelivery) Deliver(ctx context.Context, f File) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(d.Dir, 0o700); err != nil {
		return "", fmt.Errorf("delivery: create directory: %w", err)
	}
	path := filepath.Join(d.Dir, f.Filename)
	if err := os.WriteFile(path, []byte(f.Content), 0o600); err != nil {
		return "", fmt.Errorf("delivery: write %s: %w", path, err)
	}
	slog.InfoContext(ctx, "Export delivered",
		"path", path,
		"mime_type", f.MIMEType,
		"bytes", len(f.Content))
	return "saved to " + path, nil
}

// NoticeDelivery is the fallback for platforms without a save capability.
// The file is generated but nothing is written; the note makes that
// visible instead of letting the export look persisted.
type NoticeDelivery struct{}

func (NoticeDelivery) Deliver(ctx context.Context, f File) (string, error) {
	slog.WarnContext(ctx, "Export generated but not saved, platform has no save capability",
		"filename", f.Filename,
		"bytes", len(f.Content))
	return "export generated; this platform cannot save files, so nothing was written", nil
}
