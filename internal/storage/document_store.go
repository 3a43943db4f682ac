package storage

import (
	"bytes"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// DocumentStore handles uploading finished invoice documents to S3-compatible storage
type DocumentStore struct {
	s3Client *s3.S3
	bucket   string
}

// Config holds configuration for the document store
type Config struct {
	Bucket   string
	Region   string
	Endpoint string // optional, for local stacks
}

// NewDocumentStore creates a new document store
func NewDocumentStore(config *Config) (*DocumentStore, error) {
	if config.Bucket == "" {
		return nil, fmt.Errorf("document bucket is not configured")
	}

	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
	}
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess := session.Must(session.NewSession(awsConfig))

	return &DocumentStore{
		s3Client: s3.New(sess),
		bucket:   config.Bucket,
	}, nil
}

// PutObject uploads raw document bytes under the given key
func (s *DocumentStore) PutObject(key string, data []byte, contentType string) error {
	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}
	return nil
}

// TemporaryDocumentKey builds the staging key for a generated document. The
// execution ID is supplied by the invoking orchestrator per invocation.
func TemporaryDocumentKey(executionID, orderID string) string {
	return fmt.Sprintf("temp/%s-%s.pdf", executionID, orderID)
}
