package infra

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"exusiai.dev/equipsorter/internal/app/appconfig"
	"exusiai.dev/equipsorter/internal/pkg/publisher"
)

// Publisher returns nil when no bucket is configured.
func Publisher(conf *appconfig.Config) (*publisher.Publisher, error) {
	if !conf.PublishEnabled() {
		log.Trace().Msg("s3 publishing disabled: no bucket configured")
		return nil, nil
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(conf.PublishS3Region),
	}
	if conf.AWSAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(conf.AWSAccessKey, conf.AWSSecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	return &publisher.Publisher{
		S3Client:  s3.NewFromConfig(cfg),
		S3Bucket:  conf.PublishS3Bucket,
		S3Prefix:  conf.PublishS3Prefix,
		Overwrite: conf.PublishOverwrite,
	}, nil
}
