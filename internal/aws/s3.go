package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrInvalidObjectURI is returned for a source that is not s3://bucket/key.
var ErrInvalidObjectURI = errors.New("invalid object URI")

// ObjectAPI is the minimal interface for S3 object reads.
type ObjectAPI interface {
	GetObject(ctx context.Context, input *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// ObjectLocation addresses a single S3 object.
type ObjectLocation struct {
	Bucket string
	Key    string
}

// String returns the s3:// form of the location.
func (l ObjectLocation) String() string {
	return "s3://" + l.Bucket + "/" + l.Key
}

// ParseS3URI splits an s3://bucket/key URI.
func ParseS3URI(uri string) (ObjectLocation, error) {
	rest, ok := strings.CutPrefix(uri, "s3://")
	if !ok {
		return ObjectLocation{}, fmt.Errorf("%w: %q lacks s3:// scheme", ErrInvalidObjectURI, uri)
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return ObjectLocation{}, fmt.Errorf("%w: %q must name a bucket and an object key", ErrInvalidObjectURI, uri)
	}
	return ObjectLocation{Bucket: bucket, Key: key}, nil
}

// ObjectStore reads vacancy exports from S3.
type ObjectStore struct {
	client ObjectAPI
}

// NewObjectStore creates an ObjectStore over an S3 client.
func NewObjectStore(client ObjectAPI) *ObjectStore {
	return &ObjectStore{client: client}
}

// OpenObject streams the object named by uri. The caller closes the body.
func (s *ObjectStore) OpenObject(ctx context.Context, uri string) (io.ReadCloser, error) {
	loc, err := ParseS3URI(uri)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: awssdk.String(loc.Bucket),
		Key:    awssdk.String(loc.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object %s: %w", loc, err)
	}

	slog.Debug("Opened object", "bucket", loc.Bucket, "key", loc.Key, "bytes", awssdk.ToInt64(out.ContentLength))
	return out.Body, nil
}
