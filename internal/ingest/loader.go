package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ppiankov/vacancyspectre/internal/vacancy"
)

// StdinSource names standard input as a source.
const StdinSource = "-"

// ObjectScheme prefixes sources served by an ObjectOpener.
const ObjectScheme = "s3://"

// DefaultConcurrency is how many sources LoadAll reads at once.
const DefaultConcurrency = 4

// ErrNoObjectStore is returned for an object source when the Loader has no ObjectOpener.
var ErrNoObjectStore = errors.New("no object store configured")

// ObjectOpener opens remote objects by URI.
type ObjectOpener interface {
	OpenObject(ctx context.Context, uri string) (io.ReadCloser, error)
}

// IsObjectSource reports whether source names a remote object.
func IsObjectSource(source string) bool {
	return strings.HasPrefix(source, ObjectScheme)
}

// Loader reads vacancies from local files, standard input and object storage.
// Standard input is read once; every "-" source parses the same bytes.
type Loader struct {
	objects     ObjectOpener
	stdin       io.Reader
	concurrency int

	stdinOnce sync.Once
	stdinData []byte
	stdinErr  error
}

// NewLoader creates a Loader. objects may be nil when no source is remote.
func NewLoader(objects ObjectOpener, stdin io.Reader) *Loader {
	return &Loader{
		objects:     objects,
		stdin:       stdin,
		concurrency: DefaultConcurrency,
	}
}

// SetConcurrency limits how many sources LoadAll reads at once.
func (l *Loader) SetConcurrency(n int) {
	if n <= 0 {
		n = DefaultConcurrency
	}
	l.concurrency = n
}

// Load parses a single source.
func (l *Loader) Load(ctx context.Context, source string) ([]vacancy.Vacancy, error) {
	rc, err := l.open(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	defer func() { _ = rc.Close() }()

	records, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	slog.Debug("Loaded source", "source", source, "vacancies", len(records))
	return records, nil
}

// LoadAll parses every source concurrently and concatenates the results in source order.
// The first failing source aborts the load.
func (l *Loader) LoadAll(ctx context.Context, sources []string) ([]vacancy.Vacancy, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("no sources given")
	}

	parts := make([][]vacancy.Vacancy, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.concurrency)

	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			records, err := l.Load(ctx, source)
			if err != nil {
				return err
			}
			parts[i] = records
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	all := make([]vacancy.Vacancy, 0, total)
	for _, p := range parts {
		all = append(all, p...)
	}
	return all, nil
}

func (l *Loader) open(ctx context.Context, source string) (io.ReadCloser, error) {
	switch {
	case source == StdinSource:
		data, err := l.readStdin()
		if err != nil {
			return nil, err
		}
		return io.NopCloser(bytes.NewReader(data)), nil
	case IsObjectSource(source):
		if l.objects == nil {
			return nil, ErrNoObjectStore
		}
		return l.objects.OpenObject(ctx, source)
	default:
		return os.Open(source)
	}
}

func (l *Loader) readStdin() ([]byte, error) {
	l.stdinOnce.Do(func() {
		if l.stdin == nil {
			l.stdinErr = fmt.Errorf("standard input unavailable")
			return
		}
		l.stdinData, l.stdinErr = io.ReadAll(l.stdin)
	})
	return l.stdinData, l.stdinErr
}
