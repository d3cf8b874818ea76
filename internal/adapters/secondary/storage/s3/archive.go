package s3

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/minio/minio-go/v7"
)

// Archive stores assembled prompts for offline QA. Keys follow
// prompts/{yyyy}/{mm}/{dd}/{request_id}.txt.
type Archive struct {
	client *minio.Client
	bucket string
	log    *slog.Logger
}

func NewArchive(client *minio.Client, bucket string, log *slog.Logger) *Archive {
	return &Archive{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

// StorePrompt uploads one assembled prompt under the request's ID.
func (a *Archive) StorePrompt(ctx context.Context, requestID string, prompt string) error {
	if a == nil || a.client == nil {
		return fmt.Errorf("prompt archive is not initialized")
	}

	now := time.Now().UTC()
	key := fmt.Sprintf("prompts/%04d/%02d/%02d/%s.txt", now.Year(), int(now.Month()), now.Day(), requestID)

	data := []byte(prompt)
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
	})
	if err != nil {
		return fmt.Errorf("failed to store prompt %s: %w", key, err)
	}

	a.log.Debug("prompt archived",
		"key", key,
		"size", len(data),
	)

	return nil
}
