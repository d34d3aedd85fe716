package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"yt-digest/internal/app/model"
)

// Options configures the MinIO-backed archive.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioArchive stores artifacts in a MinIO (or S3-compatible) bucket.
type MinioArchive struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
	now      func() time.Time
}

// NewMinioArchive connects to object storage and ensures the bucket exists.
func NewMinioArchive(ctx context.Context, opts Options) (*MinioArchive, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinioArchive{
		client:   client,
		bucket:   opts.Bucket,
		endpoint: opts.Endpoint,
		useSSL:   opts.UseSSL,
		now:      time.Now,
	}, nil
}

// SaveDigest stores the digest as markdown under digests/{playlist}/{ts}.md.
func (a *MinioArchive) SaveDigest(ctx context.Context, digest model.Digest) (string, error) {
	key := digestKey(digest.PlaylistID, a.now())
	body := []byte(renderDigestMarkdown(digest))

	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{
			ContentType: "text/markdown",
			UserMetadata: map[string]string{
				"playlist-id": digest.PlaylistID,
				"strategy":    string(digest.Strategy),
			},
		})
	if err != nil {
		return "", fmt.Errorf("failed to upload digest: %w", err)
	}
	return key, nil
}

// SaveCorpus stores a JSON snapshot under corpora/{playlist}/{ts}.json.
func (a *MinioArchive) SaveCorpus(ctx context.Context, playlist model.Playlist) (string, error) {
	key := corpusKey(playlist.ID, a.now())
	body, err := json.Marshal(playlist)
	if err != nil {
		return "", fmt.Errorf("failed to encode corpus: %w", err)
	}

	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(body), int64(len(body)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return "", fmt.Errorf("failed to upload corpus snapshot: %w", err)
	}
	return key, nil
}

// ArtifactURL returns the direct URL of a stored artifact.
func (a *MinioArchive) ArtifactURL(key string) string {
	protocol := "http"
	if a.useSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, a.endpoint, a.bucket, key)
}
