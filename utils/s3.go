package utils

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// getStorageConfig returns AWS config for the S3-compatible bucket endpoint.
func getStorageConfig() (aws.Config, error) {
	accessKey := os.Getenv("S3_ACCESS_KEY_ID")
	secretKey := os.Getenv("S3_SECRET_ACCESS_KEY")
	if accessKey == "" || secretKey == "" {
		return aws.Config{}, fmt.Errorf("S3_ACCESS_KEY_ID or S3_SECRET_ACCESS_KEY is not set")
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = "auto"
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		),
	)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load storage config: %w", err)
	}
	return cfg, nil
}

func getStorageClient() (*s3.Client, error) {
	cfg, err := getStorageConfig()
	if err != nil {
		return nil, err
	}
	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})
	return client, nil
}

func getStorageBucket() (string, error) {
	bucket := os.Getenv("S3_BUCKET_NAME")
	if bucket == "" {
		return "", fmt.Errorf("S3_BUCKET_NAME is not set")
	}
	return bucket, nil
}

// UploadToBucket stores an object under key and returns nil on success.
func UploadToBucket(ctx context.Context, key string, body io.Reader, contentType string) error {
	bucket, err := getStorageBucket()
	if err != nil {
		return err
	}
	client, err := getStorageClient()
	if err != nil {
		return err
	}

	if contentType == "" {
		contentType = mime.TypeByExtension(path.Ext(key))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("bucket upload failed: %w", err)
	}
	return nil
}

// PublicURL resolves the public URL for a stored object. S3_PUBLIC_BASE_URL
// points at the bucket's public host (CDN or storage provider); without it the
// endpoint/bucket form is used.
func PublicURL(key string) string {
	if base := strings.TrimRight(os.Getenv("S3_PUBLIC_BASE_URL"), "/"); base != "" {
		return base + "/" + key
	}
	endpoint := strings.TrimRight(os.Getenv("S3_ENDPOINT"), "/")
	bucket := os.Getenv("S3_BUCKET_NAME")
	return fmt.Sprintf("%s/%s/%s", endpoint, bucket, key)
}

// PresignGetURL returns a presigned GET URL for a private object.
func PresignGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	bucket, err := getStorageBucket()
	if err != nil {
		return "", err
	}
	client, err := getStorageClient()
	if err != nil {
		return "", err
	}

	presigner := s3.NewPresignClient(client)
	presigned, err := presigner.PresignGetObject(ctx,
		&s3.GetObjectInput{
			Bucket: aws.String(bucket),
			Key:    aws.String(key),
		},
		func(po *s3.PresignOptions) {
			po.Expires = expiry
		},
	)
	if err != nil {
		return "", fmt.Errorf("presign failed: %w", err)
	}
	return presigned.URL, nil
}

// DeleteFromBucket removes an object; missing keys are not an error.
func DeleteFromBucket(ctx context.Context, key string) error {
	bucket, err := getStorageBucket()
	if err != nil {
		return err
	}
	client, err := getStorageClient()
	if err != nil {
		return err
	}
	_, err = client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("bucket delete failed: %w", err)
	}
	return nil
}
