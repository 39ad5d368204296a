package spike

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"

	"spiker/internal/logging"
)

// ErrNoMatch is returned when no entry matches a query.
var ErrNoMatch = errors.New("no matching spike")

// RepoInitializer prepares version control inside a new spike directory.
type RepoInitializer interface {
	InitRepo(ctx context.Context, dir string) error
}

// Index is the implicit index of spike directories under a root.
type Index struct {
	root        string
	generator   *Generator
	initializer RepoInitializer
	now         func() time.Time
	logger      *zap.Logger
}

// Option configures an Index.
type Option func(*Index)

// WithGenerator sets the slug generator used when Create gets no slug.
func WithGenerator(g *Generator) Option {
	return func(ix *Index) { ix.generator = g }
}

// WithRepoInitializer sets the initializer run by Create when Git is requested.
func WithRepoInitializer(ri RepoInitializer) Option {
	return func(ix *Index) { ix.initializer = ri }
}

// WithClock overrides the clock used for new entry dates.
func WithClock(now func() time.Time) Option {
	return func(ix *Index) { ix.now = now }
}

// NewIndex returns an Index over root.
func NewIndex(root string, opts ...Option) *Index {
	ix := &Index{
		root:      root,
		generator: NewGenerator(nil),
		now:       time.Now,
		logger:    logging.Get(logging.CategoryIndex),
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// List returns every spike under the root, most recent first.
//
// Entries are ordered by their full directory name, descending. Because
// names start with a zero-padded ISO date this is newest-first, and
// entries sharing a date come out in reverse slug order. A missing root
// yields an empty list.
func (ix *Index) List() ([]Entry, error) {
	root, err := filepath.Abs(ix.root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", ix.root, err)
	}

	dirents, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			ix.logger.Debug("Root does not exist", zap.String("root", root))
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read spike root: %w", err)
	}

	names := make([]string, 0, len(dirents))
	for _, d := range dirents {
		if !isDir(root, d) {
			continue
		}
		names = append(names, d.Name())
	}
	slices.SortFunc(names, func(a, b string) int { return strings.Compare(b, a) })

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		date, slug, ok := ParseDirName(name)
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Date: date,
			Slug: slug,
			Path: filepath.Join(root, name),
		})
	}

	ix.logger.Debug("Listed spikes", zap.String("root", root), zap.Int("count", len(entries)))
	return entries, nil
}

// isDir reports whether d is a directory, following symlinks.
func isDir(root string, d fs.DirEntry) bool {
	if d.IsDir() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(root, d.Name()))
	return err == nil && info.IsDir()
}

// Find returns the entries whose slug contains query, ignoring case.
// The result keeps List order and is empty when nothing matches.
func (ix *Index) Find(query string) ([]Entry, error) {
	return ix.filter(func(e Entry) bool { return MatchSlug(e.Slug, query) })
}

// FindGlob returns the entries whose slug matches a doublestar pattern,
// ignoring case.
func (ix *Index) FindGlob(pattern string) ([]Entry, error) {
	pattern = strings.ToLower(pattern)
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	return ix.filter(func(e Entry) bool {
		ok, _ := doublestar.Match(pattern, strings.ToLower(e.Slug))
		return ok
	})
}

func (ix *Index) filter(keep func(Entry) bool) ([]Entry, error) {
	entries, err := ix.List()
	if err != nil {
		return nil, err
	}
	var matches []Entry
	for _, e := range entries {
		if keep(e) {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// Resolve returns the most recent entry whose slug contains query.
// It returns ErrNoMatch when there is none.
func (ix *Index) Resolve(query string) (Entry, error) {
	entries, err := ix.List()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if MatchSlug(e.Slug, query) {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%w for %q", ErrNoMatch, query)
}

// CreateOptions controls Create.
type CreateOptions struct {
	// Slug names the entry. Empty means generate one.
	Slug string
	// Git runs the repo initializer once in the new directory.
	Git bool
}

// Create makes a spike directory dated today and returns it.
//
// Creating a name that already exists is not an error and leaves the
// directory untouched. Repo initialization is best-effort: its failure
// is logged and otherwise ignored.
func (ix *Index) Create(ctx context.Context, opts CreateOptions) (Entry, error) {
	root, err := filepath.Abs(ix.root)
	if err != nil {
		return Entry{}, fmt.Errorf("failed to resolve root %s: %w", ix.root, err)
	}
	if err := os.MkdirAll(root, 0755); err != nil {
		return Entry{}, fmt.Errorf("failed to create spike root: %w", err)
	}

	slug := opts.Slug
	if slug == "" {
		slug = ix.generator.Slug()
	}
	entry := Entry{
		Date: ix.now().Format(DateLayout),
		Slug: slug,
	}
	entry.Path = filepath.Join(root, entry.Name())

	if err := os.MkdirAll(entry.Path, 0755); err != nil {
		return Entry{}, fmt.Errorf("failed to create spike directory: %w", err)
	}
	ix.logger.Info("Created spike", zap.String("path", entry.Path))

	if opts.Git && ix.initializer != nil {
		if err := ix.initializer.InitRepo(ctx, entry.Path); err != nil {
			ix.logger.Debug("Repo initialization failed", zap.String("path", entry.Path), zap.Error(err))
		}
	}

	return entry, nil
}
