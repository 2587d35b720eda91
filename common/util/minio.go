package util

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sunthewhat/quick-cert-api/type/shared"
)

// ObjectArchive copies generated certificates into a MinIO bucket.
type ObjectArchive struct {
	client   *minio.Client
	endpoint string
	bucket   string
	secure   bool
}

func NewObjectArchive(config *shared.Config) (*ObjectArchive, error) {
	if !config.ArchiveEnabled() {
		return nil, fmt.Errorf("MinIO configuration is incomplete")
	}

	secure := config.MinIoSecure == nil || *config.MinIoSecure

	client, err := minio.New(*config.MinIoEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(*config.MinIoAccessKey, *config.MinIoSecretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	return &ObjectArchive{
		client:   client,
		endpoint: *config.MinIoEndpoint,
		bucket:   *config.BucketCertificate,
		secure:   secure,
	}, nil
}

// UploadPDF stores the file at path as objectName and returns the object URL.
func (a *ObjectArchive) UploadPDF(ctx context.Context, objectName string, path string) (string, error) {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	if _, err := a.client.FPutObject(ctx, a.bucket, objectName, path, minio.PutObjectOptions{
		ContentType: "application/pdf",
	}); err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return a.ObjectURL(objectName), nil
}

func (a *ObjectArchive) ObjectURL(objectName string) string {
	scheme := "http"
	if a.secure {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, a.endpoint, a.bucket, strings.TrimPrefix(objectName, "/"))
}
