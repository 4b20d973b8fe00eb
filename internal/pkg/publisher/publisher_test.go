package publisher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exusiai.dev/equipsorter/internal/pkg/apperr"
	"exusiai.dev/equipsorter/internal/pkg/flog"
)

type fakeObjects struct {
	existing map[string]time.Time
	headErr  error
	putFails int
	put      map[string]string
	metadata map[string]map[string]string
}

func (f *fakeObjects) HeadObject(_ context.Context, params *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	if modified, ok := f.existing[aws.ToString(params.Key)]; ok {
		return &s3.HeadObjectOutput{LastModified: aws.Time(modified)}, nil
	}
	return nil, &smithy.GenericAPIError{Code: "NotFound", Message: "Not Found"}
}

func (f *fakeObjects) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	if f.putFails > 0 {
		f.putFails--
		return nil, &smithy.GenericAPIError{Code: "SlowDown"}
	}
	if f.put == nil {
		f.put = map[string]string{}
		f.metadata = map[string]map[string]string{}
	}
	f.put[aws.ToString(params.Key)] = string(body)
	f.metadata[aws.ToString(params.Key)] = params.Metadata
	return &s3.PutObjectOutput{}, nil
}

func writeExport(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "equipment stats minimal.csv")
	require.NoError(t, os.WriteFile(path, []byte("rarity,rank\nepic,S\n"), 0o644))
	return path
}

func TestPublish(t *testing.T) {
	objects := &fakeObjects{}
	p := &Publisher{S3Client: objects, S3Bucket: "bucket", S3Prefix: "exports/"}

	key, err := p.Publish(context.Background(), writeExport(t))
	require.NoError(t, err)
	assert.Equal(t, "exports/equipment stats minimal.csv", key)
	assert.Equal(t, "rarity,rank\nepic,S\n", objects.put[key])
}

func TestPublishRefusesExisting(t *testing.T) {
	objects := &fakeObjects{existing: map[string]time.Time{
		"exports/equipment stats minimal.csv": time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	p := &Publisher{S3Client: objects, S3Bucket: "bucket", S3Prefix: "exports/"}

	_, err := p.Publish(context.Background(), writeExport(t))
	assert.True(t, errors.Is(err, apperr.ErrAlreadyExists))
	assert.Empty(t, objects.put)
}

func TestPublishOverwrite(t *testing.T) {
	objects := &fakeObjects{
		existing: map[string]time.Time{"equipment stats minimal.csv": time.Now()},
		headErr:  errors.New("head must not be called"),
	}
	p := &Publisher{S3Client: objects, S3Bucket: "bucket", Overwrite: true}

	key, err := p.Publish(context.Background(), writeExport(t))
	require.NoError(t, err)
	assert.Equal(t, "equipment stats minimal.csv", key)
}

func TestPublishHeadFailure(t *testing.T) {
	objects := &fakeObjects{headErr: &smithy.GenericAPIError{Code: "AccessDenied"}}
	p := &Publisher{S3Client: objects, S3Bucket: "bucket"}

	_, err := p.Publish(context.Background(), writeExport(t))
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperr.ErrAlreadyExists))
	assert.Contains(t, err.Error(), "failed to invoke HeadObject")
}

func TestPublishRetriesTransientFailure(t *testing.T) {
	objects := &fakeObjects{putFails: 1}
	p := &Publisher{S3Client: objects, S3Bucket: "bucket"}

	ctx, id := flog.WithRun(context.Background())
	key, err := p.Publish(ctx, writeExport(t))
	require.NoError(t, err)
	assert.Equal(t, 0, objects.putFails)
	assert.Equal(t, "rarity,rank\nepic,S\n", objects.put[key])
	assert.Equal(t, id.String(), objects.metadata[key][MetadataRunID])
}

func TestPublishGivesUp(t *testing.T) {
	objects := &fakeObjects{putFails: putAttempts}
	p := &Publisher{S3Client: objects, S3Bucket: "bucket"}

	_, err := p.Publish(context.Background(), writeExport(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to invoke PutObject")
	assert.Empty(t, objects.put)
}
