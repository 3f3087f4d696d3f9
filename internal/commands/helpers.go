package commands

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/ppiankov/vacancyspectre/internal/aws"
	"github.com/ppiankov/vacancyspectre/internal/config"
	"github.com/ppiankov/vacancyspectre/internal/criterion"
	"github.com/ppiankov/vacancyspectre/internal/currency"
	"github.com/ppiankov/vacancyspectre/internal/ingest"
	"github.com/ppiankov/vacancyspectre/internal/report"
	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

// enhanceError wraps an error with context and suggestions for common issues.
func enhanceError(action string, err error) error {
	msg := err.Error()

	var hint string
	switch {
	case errors.Is(err, ingest.ErrEmptyFile):
		hint = "The input file is empty. Check the export path"
	case errors.Is(err, ingest.ErrNoData):
		hint = "No row has every column filled in. Check the header and delimiter"
	case errors.Is(err, currency.ErrUnknownCurrency):
		hint = "Add the missing currency under 'rates' in .vacancyspectre.yaml"
	case errors.Is(err, vacancy.ErrInvalidTimestamp):
		hint = "published_at must look like 2022-07-05T18:19:30+0300"
	case errors.Is(err, aws.ErrInvalidObjectURI):
		hint = "Object sources must look like s3://bucket/key.csv"
	case errors.Is(err, ingest.ErrNoObjectStore):
		hint = "Object storage is not configured for this run"
	case strings.Contains(msg, "NoCredentialProviders") || strings.Contains(msg, "failed to retrieve credentials"):
		hint = "Configure AWS credentials: set AWS_PROFILE, AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY, or run 'aws configure'"
	case strings.Contains(msg, "ExpiredToken"):
		hint = "AWS session token expired. Refresh credentials or run 'aws sso login'"
	case strings.Contains(msg, "AccessDenied"):
		hint = "Insufficient permissions. The role needs s3:GetObject on the source bucket"
	case strings.Contains(msg, "NoSuchKey") || strings.Contains(msg, "NoSuchBucket"):
		hint = "The S3 object does not exist. Check the bucket and key"
	}

	if hint != "" {
		return fmt.Errorf("%s: %w\n  hint: %s", action, err, hint)
	}
	return fmt.Errorf("%s: %w", action, err)
}

// computeSourceHash generates a SHA256 hash for the source list.
func computeSourceHash(sources []string) string {
	input := fmt.Sprintf("sources:%s", strings.Join(sources, ","))
	h := sha256.Sum256([]byte(input))
	return fmt.Sprintf("sha256:%x", h)
}

// sourceType names the kind of sources a run reads.
func sourceType(sources []string) string {
	remote := slices.ContainsFunc(sources, ingest.IsObjectSource)
	local := slices.ContainsFunc(sources, func(s string) bool { return !ingest.IsObjectSource(s) })
	switch {
	case remote && local:
		return "mixed"
	case remote:
		return "s3"
	default:
		return "csv"
	}
}

// resolveSources prefers command arguments over configured sources.
func resolveSources(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if len(cfg.Sources) > 0 {
		return cfg.Sources, nil
	}
	return nil, fmt.Errorf("no sources: pass CSV files, '-' or s3:// URIs, or set sources in %s", config.FileName)
}

func newNormalizer() *currency.Normalizer {
	return currency.New(currency.DefaultRates().Merge(cfg.Rates), cfg.ReferenceCurrency)
}

func newResolver(norm *currency.Normalizer) *criterion.Resolver {
	return criterion.NewResolver(criterion.DefaultDictionary(), criterion.DefaultRanks(), norm)
}

// newLoader builds a loader, connecting to S3 only when a source needs it.
func newLoader(ctx context.Context, sources []string, stdin io.Reader) (*ingest.Loader, error) {
	if !slices.ContainsFunc(sources, ingest.IsObjectSource) {
		return ingest.NewLoader(nil, stdin), nil
	}

	prof := profile
	if prof == "" {
		prof = cfg.Profile
	}
	reg := region
	if reg == "" {
		reg = cfg.Region
	}
	ep := endpoint
	if ep == "" {
		ep = cfg.Endpoint
	}

	client, err := aws.NewClient(ctx, prof, reg)
	if err != nil {
		return nil, enhanceError("initialize AWS client", err)
	}
	return ingest.NewLoader(client.ObjectStore(ep), stdin), nil
}

// withTimeout applies d to ctx when positive.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d > 0 {
		return context.WithTimeout(ctx, d)
	}
	return context.WithCancel(ctx)
}

// openOutput returns stdout or a created file, with a matching close function.
func openOutput(stdout io.Writer, outputFile string) (io.Writer, func() error, error) {
	if outputFile == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}

func selectReporter(format string, w io.Writer) (report.Reporter, error) {
	switch format {
	case "json":
		return &report.JSONReporter{Writer: w}, nil
	case "text":
		return &report.TextReporter{Writer: w}, nil
	case "yaml":
		return &report.YAMLReporter{Writer: w}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (use text, json, or yaml)", format)
	}
}
