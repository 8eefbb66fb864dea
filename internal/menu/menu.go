// Package menu loads drink orders from JSON-lines menu files.
//
// Each non-blank line that does not start with '#' holds one drink spec
// object. Files whose name ends in ".gz" are read through a parallel gzip
// reader.
package menu

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	pgzip "github.com/klauspost/pgzip"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/barista/internal/domain/drink"
)

// maxLineSize bounds a single spec line.
const maxLineSize = 64 * 1024

// Entry is a spec together with its position in the source file.
type Entry struct {
	Path string
	Line int
	Spec drink.Spec
}

// LineError reports a line that could not be decoded.
type LineError struct {
	Path string
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Load reads all specs from the file at path.
func Load(ctx context.Context, path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "create gzip reader for %s", path)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	entries, err := Decode(ctx, path, r)
	if err != nil {
		return nil, err
	}

	zctx.From(ctx).Debug("Menu loaded",
		zap.String("path", path),
		zap.Int("entries", len(entries)),
	)
	return entries, nil
}

// Decode reads specs from r. name is only used in errors.
func Decode(ctx context.Context, name string, r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	var (
		entries []Entry
		line    int
	)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line++

		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 || raw[0] == '#' {
			continue
		}

		s, err := drink.DecodeSpec(raw)
		if err != nil {
			return nil, &LineError{Path: name, Line: line, Err: err}
		}
		entries = append(entries, Entry{Path: name, Line: line, Spec: s})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "scan %s", name)
	}

	return entries, nil
}

// LoadAll loads every file concurrently and returns the entries in the order
// of paths, then line order within each file.
func LoadAll(ctx context.Context, paths []string) ([]Entry, error) {
	results := make([][]Entry, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			entries, err := Load(ctx, path)
			if err != nil {
				return err
			}
			results[i] = entries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Entry
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
