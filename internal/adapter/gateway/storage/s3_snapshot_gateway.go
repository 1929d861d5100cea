package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/YoshitsuguKoike/smartfarm/internal/application/port/output"
)

// S3SnapshotGateway implements SnapshotGateway using AWS S3
// Object layout: s3://<bucket>/<prefix>/<key>.json
type S3SnapshotGateway struct {
	client     S3API // Use interface for testability
	bucketName string
	prefix     string
}

// S3Config holds S3 snapshot gateway configuration
type S3Config struct {
	BucketName string // S3 bucket name
	Prefix     string // Optional key prefix
	Region     string // AWS region (optional, uses default if empty)
}

// NewS3SnapshotGateway creates an S3 gateway from the default AWS credential chain
func NewS3SnapshotGateway(ctx context.Context, cfg S3Config) (*S3SnapshotGateway, error) {
	if cfg.BucketName == "" {
		return nil, errors.New("s3 bucket name is required")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	if cfg.Region != "" {
		awsCfg.Region = cfg.Region
	}

	return NewS3SnapshotGatewayWithClient(s3.NewFromConfig(awsCfg), cfg.BucketName, cfg.Prefix), nil
}

// NewS3SnapshotGatewayWithClient creates an S3 gateway over a custom client
// This is primarily used for testing with mock S3 clients
func NewS3SnapshotGatewayWithClient(client S3API, bucketName, prefix string) *S3SnapshotGateway {
	return &S3SnapshotGateway{
		client:     client,
		bucketName: bucketName,
		prefix:     prefix,
	}
}

// Load downloads the snapshot object for key
func (g *S3SnapshotGateway) Load(ctx context.Context, key string) ([]byte, error) {
	out, err := g.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(g.bucketName),
		Key:    aws.String(g.objectKey(key)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, output.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("download from S3: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read S3 object body: %w", err)
	}
	return data, nil
}

// Save uploads the snapshot object for key, replacing the previous version
func (g *S3SnapshotGateway) Save(ctx context.Context, key string, data []byte) error {
	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(g.bucketName),
		Key:         aws.String(g.objectKey(key)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
		Metadata: map[string]string{
			"storage-key": key,
			"saved-at":    time.Now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		return fmt.Errorf("upload to S3: %w", err)
	}
	return nil
}

// Location returns the S3 URI for key
func (g *S3SnapshotGateway) Location(key string) string {
	return fmt.Sprintf("s3://%s/%s", g.bucketName, g.objectKey(key))
}

// objectKey builds <prefix>/<key>.json
func (g *S3SnapshotGateway) objectKey(key string) string {
	return path.Join(g.prefix, key+".json")
}
