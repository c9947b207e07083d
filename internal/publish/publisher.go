// internal/publish/publisher.go
package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bstardust/photo-gps-report/internal/fileinfo"
	"github.com/bstardust/photo-gps-report/internal/logger"
	"github.com/bstardust/photo-gps-report/pkg/common"
	"github.com/bstardust/photo-gps-report/pkg/s3client"
)

// presignedExpiry is how long the logged download link stays valid
const presignedExpiry = 7 * 24 * time.Hour

// Publisher uploads a finished report to S3-compatible storage
type Publisher struct {
	client s3client.S3Interface
	retry  RetryConfig
}

// New creates a new Publisher
func New(client s3client.S3Interface) *Publisher {
	return &Publisher{
		client: client,
		retry:  DefaultRetryConfig(),
	}
}

// Run uploads the report at reportPath and logs a presigned download URL.
// The report on disk is left untouched whether or not the upload succeeds.
func (p *Publisher) Run(ctx context.Context, reportPath string) error {
	info, err := os.Stat(reportPath)
	if err != nil {
		return common.NewPublishError("report file not available: %v", err)
	}

	objectKey := filepath.Base(reportPath)

	exists, err := p.client.ObjectExists(ctx, objectKey)
	if err != nil {
		logger.Warn("Failed to check if report already exists: %v", err)
	} else if exists {
		logger.Warn("Object %s already exists in bucket %s and will be replaced",
			objectKey, p.client.GetBucketName())
	}

	operation := fmt.Sprintf("upload of %s", objectKey)
	err = RetryWithBackoff(ctx, operation, func() error {
		return p.upload(ctx, reportPath, objectKey, info.Size())
	}, p.retry)
	if err != nil {
		if s3client.IsAuthError(err) {
			return common.NewPublishError("access denied by %s, check the access and secret keys: %s",
				p.client.GetEndpoint(), s3client.FormatError(err))
		}
		return common.NewPublishError("failed to upload report: %s", s3client.FormatError(err))
	}

	logger.Info("Published %s to bucket %s", objectKey, p.client.GetBucketName())

	url, err := p.client.GetPresignedURL(ctx, objectKey, presignedExpiry)
	if err != nil {
		logger.Warn("Failed to generate download URL: %v", err)
		return nil
	}
	logger.Info("Download URL (valid for 7 days): %s", url)

	return nil
}

// upload performs a single attempt. The report is reopened every time so a
// retry never resumes from a half-consumed reader.
func (p *Publisher) upload(ctx context.Context, reportPath, objectKey string, size int64) error {
	reader, err := os.Open(reportPath)
	if err != nil {
		return fmt.Errorf("failed to open report: %w", err)
	}
	defer reader.Close()

	metadata := map[string]string{
		"original-filename": filepath.Base(reportPath),
	}

	contentType := fileinfo.DetectContentType(reportPath)

	return p.client.UploadFile(ctx, reader, objectKey, size, metadata, contentType)
}
