package importer

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/rolodex"
	"github.com/poiesic/rolodex/codec"
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage/file"
	"github.com/poiesic/rolodex/trie"
)

const releaseTimeout = 5 * time.Second

// Report describes the outcome for one source file.
type Report struct {
	rolodex.LoadReport
	Err error
}

// Importer decodes contact files on a worker pool.
type Importer struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures an Importer.
type Option func(*Importer) error

// WithPoolSize sets the number of files decoded concurrently.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(im *Importer) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if im.pool != nil {
			im.pool.Release()
		}
		im.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(im *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		im.logger = logger
		return nil
	}
}

// New creates an Importer. Call Release when done.
func New(opts ...Option) (*Importer, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	im := &Importer{
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(im); optErr != nil {
			im.Release()
			return nil, optErr
		}
	}

	return im, nil
}

type decoded struct {
	contacts []core.Contact
	err      error
}

// Import merges every file in paths into idx and returns one Report per path,
// in the same order. The error is non-nil only when nothing could be attempted.
func (im *Importer) Import(ctx context.Context, idx *trie.Index, paths ...string) ([]Report, error) {
	if idx == nil {
		return nil, ErrIndexRequired
	}
	if len(paths) == 0 {
		return nil, ErrNoSources
	}

	results := make([]decoded, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		err := im.pool.Submit(func() {
			defer wg.Done()
			results[i] = decodeFile(ctx, path)
		})
		if err != nil {
			wg.Done()
			results[i].err = fmt.Errorf("failed to schedule %s: %w", path, err)
		}
	}
	wg.Wait()

	reports := make([]Report, len(paths))
	for i, path := range paths {
		res := results[i]
		report := Report{
			LoadReport: rolodex.LoadReport{Source: path, Status: rolodex.StatusOf(res.err)},
			Err:        res.err,
		}
		if res.err != nil {
			im.logger.Warn("skipping import source", "source", path, "status", report.Status, "err", res.err)
			reports[i] = report
			continue
		}

		codec.Fill(idx, res.contacts)
		report.Records = len(res.contacts)
		reports[i] = report
		im.logger.Info("imported contacts", "source", path, "records", report.Records)
	}
	return reports, nil
}

func decodeFile(ctx context.Context, path string) decoded {
	if err := ctx.Err(); err != nil {
		return decoded{err: err}
	}
	repo := file.NewRepository(path)
	defer repo.Close()
	contacts, err := repo.LoadContacts(ctx)
	return decoded{contacts: contacts, err: err}
}

// Release stops the worker pool and waits for its goroutines to exit.
// The Importer should not be used after calling Release.
func (im *Importer) Release() {
	if im.pool == nil {
		return
	}
	if err := im.pool.ReleaseTimeout(releaseTimeout); err != nil {
		im.logger.Warn("error releasing import pool", "err", err)
	}
	im.pool = nil
}

// Total sums the records read across reports.
func Total(reports []Report) int {
	n := 0
	for _, r := range reports {
		n += r.Records
	}
	return n
}
