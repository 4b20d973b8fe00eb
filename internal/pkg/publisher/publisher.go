package publisher

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"exusiai.dev/equipsorter/internal/pkg/apperr"
	"exusiai.dev/equipsorter/internal/pkg/flog"
)

const (
	ContentTypeCSV = "text/csv; charset=utf-8"

	// MetadataRunID is the object metadata key carrying the export run id.
	MetadataRunID = "export-run"

	putAttempts = 3
	putDelay    = 500 * time.Millisecond
)

// ObjectAPI is the subset of *s3.Client the publisher uses.
type ObjectAPI interface {
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ ObjectAPI = (*s3.Client)(nil)

type Publisher struct {
	S3Client ObjectAPI
	S3Bucket string

	// S3Prefix is for the files in the bucket with no leading slash but optionally (typically) with trailing slash
	// e.g. "exports/" or simply "" (empty string)
	S3Prefix string

	// Overwrite allows replacing an existing object with the same key.
	Overwrite bool
}

func (p *Publisher) logger(ctx context.Context) zerolog.Logger {
	return flog.From(ctx).With().
		Str("module", "publisher").
		Str("bucket", p.S3Bucket).
		Logger()
}

// Key is the object key a local file is published under.
func (p *Publisher) Key(localFilePath string) string {
	return p.S3Prefix + filepath.Base(localFilePath)
}

// Publish uploads the local file and returns its object key.
func (p *Publisher) Publish(ctx context.Context, localFilePath string) (string, error) {
	logger := p.logger(ctx)

	key := p.Key(localFilePath)
	if !p.Overwrite {
		if err := p.assertS3FileNonExistence(ctx, key); err != nil {
			return "", err
		}
		logger.Trace().Str("key", key).Msg("asserted S3 file non-existence")
	}

	metadata := map[string]string{}
	if id, ok := flog.IDFromCtx(ctx); ok {
		metadata[MetadataRunID] = id.String()
	}

	err := retry.Do(
		func() error {
			return p.put(ctx, localFilePath, key, metadata)
		},
		retry.Context(ctx),
		retry.Attempts(putAttempts),
		retry.Delay(putDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, os.ErrNotExist)
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn().Err(err).Uint("attempt", n+1).Str("key", key).Msg("retrying upload")
		}),
	)
	if err != nil {
		return "", err
	}

	logger.Info().Str("key", key).Msg("published file")
	return key, nil
}

func (p *Publisher) put(ctx context.Context, localFilePath string, key string, metadata map[string]string) error {
	file, err := os.Open(localFilePath)
	if err != nil {
		return errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	if _, err := p.S3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:            aws.String(p.S3Bucket),
		Key:               aws.String(key),
		Body:              file,
		ContentType:       aws.String(ContentTypeCSV),
		Metadata:          metadata,
		ChecksumAlgorithm: types.ChecksumAlgorithmSha256,
	}); err != nil {
		return errors.Wrap(err, "failed to invoke PutObject")
	}
	return nil
}

func (p *Publisher) assertS3FileNonExistence(ctx context.Context, key string) error {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(p.S3Bucket),
		Key:    aws.String(key),
	}
	object, err := p.S3Client.HeadObject(ctx, input)
	if err != nil {
		var ae smithy.APIError
		if errors.As(err, &ae) {
			if ae.ErrorCode() == "NotFound" {
				return nil
			}
		}
		return errors.Wrap(err, "failed to invoke HeadObject")
	}
	return apperr.ErrAlreadyExists.Msg("file %q already exists in s3 with LastModified %q", key, aws.ToTime(object.LastModified).String())
}
