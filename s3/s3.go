package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
)

var (
	ErrObjectExists   = errors.New("object already exists")
	ErrObjectTooLarge = errors.New("object exceeds the maximum allowed size")
)

type S3API interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type BlobStore interface {
	UploadObject(ctx context.Context, key string, data []byte, contentType string, overwrite bool) error
	PublicURL(key string) string
}

var _ BlobStore = (*S3Client)(nil)

type S3Client struct {
	Client        S3API
	Bucket        string
	Region        string
	PublicBaseURL string
}

func NewS3Client(awsCfg aws.Config, bucket, publicBaseURL string) *S3Client {
	return &S3Client{
		Client:        s3.NewFromConfig(awsCfg),
		Bucket:        bucket,
		Region:        awsCfg.Region,
		PublicBaseURL: publicBaseURL,
	}
}

// UploadObject puts data under key. Without overwrite the put is conditional
// and fails with ErrObjectExists when the key is already taken.
func (c *S3Client) UploadObject(ctx context.Context, key string, data []byte, contentType string, overwrite bool) error {
	if key == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	input := &s3.PutObjectInput{
		Bucket:        aws.String(c.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	}
	if !overwrite {
		input.IfNoneMatch = aws.String("*")
	}

	logrus.WithFields(logrus.Fields{
		"bucket":       c.Bucket,
		"key":          key,
		"content_type": contentType,
		"size":         len(data),
	}).Info("Uploading object to S3")

	if _, err := c.Client.PutObject(ctx, input); err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case "PreconditionFailed":
				return ErrObjectExists
			case "EntityTooLarge":
				return fmt.Errorf("%w: %d bytes", ErrObjectTooLarge, len(data))
			}
		}
		logrus.WithError(err).WithField("key", key).Error("S3 PutObject error")
		return fmt.Errorf("failed to upload object to S3: %w", err)
	}

	return nil
}

func (c *S3Client) PublicURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	if c.PublicBaseURL != "" {
		return strings.TrimRight(c.PublicBaseURL, "/") + "/" + escaped
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.Bucket, c.Region, escaped)
}
