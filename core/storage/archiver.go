package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
)

// Archiver writes raw upstream payloads to object storage so that each sync
// run leaves an auditable trail of what the ERP actually returned.
type Archiver struct {
	client Client
	bucket string
}

// NewArchiver creates an archiver writing to the given bucket.
func NewArchiver(client Client, bucket string) *Archiver {
	return &Archiver{client: client, bucket: bucket}
}

// EnsureBucket creates the snapshot bucket if it does not exist yet.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket: %w", err)
	}
	if exists {
		return nil
	}
	return a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{})
}

// Store archives one payload under snapshots/<date>/<name>-<time>.json.
func (a *Archiver) Store(ctx context.Context, name string, payload []byte) error {
	now := time.Now().UTC()
	objName := fmt.Sprintf("snapshots/%s/%s-%s.json",
		now.Format("2006-01-02"), name, now.Format("150405"))

	_, err := a.client.PutObject(ctx, a.bucket, objName, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", objName, err)
	}
	return nil
}
