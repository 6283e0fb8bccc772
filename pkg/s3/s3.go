package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"zidesign/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

type Client struct {
	s3Client  s3iface.S3API
	bucket    string
	publicURL string
}

func NewClient(cfg *config.Config) (*Client, error) {
	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// S3-compatible providers are addressed by endpoint with path-style buckets
	if cfg.S3Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.S3Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return NewWithAPI(s3.New(sess), cfg.S3BucketName, cfg.S3PublicURL), nil
}

func NewWithAPI(api s3iface.S3API, bucket, publicURL string) *Client {
	return &Client{
		s3Client:  api,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// PutObject stores body under key. It returns only after the provider acknowledged the write.
func (c *Client) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := c.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload file to S3: %w", err)
	}
	return nil
}

// PublicURL is derived from configuration; the provider does not return one.
func (c *Client) PublicURL(key string) string {
	return c.publicURL + "/" + strings.TrimLeft(key, "/")
}
