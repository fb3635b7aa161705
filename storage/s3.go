package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Store talks to any S3-compatible object store (AWS, R2, MinIO). The
// bucket must exist and be public; PUBLIC_URL is the base under which its
// objects are reachable.
type S3Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func s3Configured() bool {
	return os.Getenv("S3_ENDPOINT") != "" || os.Getenv("S3_ACCESS_KEY") != ""
}

func NewS3Store(ctx context.Context) (*S3Store, error) {
	accessKey := os.Getenv("S3_ACCESS_KEY")
	secretKey := os.Getenv("S3_SECRET_KEY")
	endpoint := os.Getenv("S3_ENDPOINT")
	region := os.Getenv("S3_REGION")
	publicURL := os.Getenv("PUBLIC_URL")
	if region == "" {
		region = "auto"
	}
	if publicURL == "" {
		return nil, fmt.Errorf("PUBLIC_URL must be set for s3 storage")
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:    client,
		bucket:    BucketName,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (s *S3Store) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	key := objectKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType(filename)),
	})
	if err != nil {
		return "", mapS3Error(err)
	}

	return s.publicURL + "/" + key, nil
}

func (s *S3Store) List(ctx context.Context) ([]string, error) {
	var keys []string

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, mapS3Error(err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}

	return keys, nil
}

func (s *S3Store) Buckets(ctx context.Context) ([]string, error) {
	out, err := s.client.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, err
	}

	var names []string
	for _, b := range out.Buckets {
		names = append(names, aws.ToString(b.Name))
	}
	return names, nil
}

func mapS3Error(err error) error {
	var noBucket *types.NoSuchBucket
	if errors.As(err, &noBucket) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NoSuchBucket" {
		return ErrBucketNotFound
	}

	return err
}
