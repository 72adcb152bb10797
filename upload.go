package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/joho/godotenv"
)

// uploadPNG pushes the finished render to object storage. The destination is
// an s3://bucket/key URL; credentials and endpoint come from the environment
// (optionally via a .env file): S3_ACCESS_KEY, S3_SECRET_KEY, S3_ENDPOINT,
// S3_REGION.
func uploadPNG(dest, path string) error {
	bucket, key, err := parseS3URL(dest)
	if err != nil {
		return err
	}

	_ = godotenv.Load()

	s3Config := &aws.Config{
		Credentials: credentials.NewStaticCredentials(
			os.Getenv("S3_ACCESS_KEY"), os.Getenv("S3_SECRET_KEY"), ""),
		Endpoint:         aws.String(os.Getenv("S3_ENDPOINT")),
		Region:           aws.String(os.Getenv("S3_REGION")),
		S3ForcePathStyle: aws.Bool(true),
	}
	sess, err := session.NewSession(s3Config)
	if err != nil {
		return fmt.Errorf("failed to create S3 session: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = s3.New(sess).PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to s3://%s/%s: %w", path, bucket, key, err)
	}
	return nil
}

func parseS3URL(dest string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(dest, "s3://")
	if !ok {
		return "", "", fmt.Errorf("upload destination must look like s3://bucket/key, got %q", dest)
	}
	bucket, key, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("upload destination must look like s3://bucket/key, got %q", dest)
	}
	return bucket, key, nil
}
