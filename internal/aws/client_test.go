package aws

import (
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestClient_ObjectStore(t *testing.T) {
	c := &Client{cfg: awssdk.Config{Region: "eu-central-1"}}
	tests := []struct {
		endpoint  string
		pathStyle bool
	}{
		{"", false},
		{"https://example.r2.cloudflarestorage.com", true},
	}
	for _, tt := range tests {
		store := c.ObjectStore(tt.endpoint)
		svc, ok := store.client.(*s3.Client)
		if !ok {
			t.Fatalf("expected *s3.Client, got %T", store.client)
		}
		opts := svc.Options()
		if opts.Region != "eu-central-1" {
			t.Fatalf("expected region eu-central-1, got %s", opts.Region)
		}
		if opts.UsePathStyle != tt.pathStyle {
			t.Fatalf("endpoint %q: expected path style %v", tt.endpoint, tt.pathStyle)
		}
		if tt.endpoint != "" && awssdk.ToString(opts.BaseEndpoint) != tt.endpoint {
			t.Fatalf("expected endpoint %s, got %s", tt.endpoint, awssdk.ToString(opts.BaseEndpoint))
		}
	}
}
