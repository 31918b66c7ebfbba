package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/poiesic/rolodex/codec"
	"github.com/poiesic/rolodex/core"
	"github.com/poiesic/rolodex/storage"
)

const filePerm = 0644

// Repository implements storage.ContactRepository over a single JSON or YAML file.
type Repository struct {
	path   string
	format codec.Format
	logger *slog.Logger
}

var _ storage.ContactRepository = (*Repository)(nil)

// Option configures a Repository.
type Option func(*Repository)

// WithFormat overrides the format inferred from the file extension.
func WithFormat(f codec.Format) Option {
	return func(r *Repository) {
		r.format = f
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// NewRepository creates a repository for the file at path. The file does not
// need to exist.
func NewRepository(path string, opts ...Option) *Repository {
	r := &Repository{
		path:   path,
		format: codec.FormatFromPath(path),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the file path.
func (r *Repository) Path() string {
	return r.path
}

// Format returns the file format.
func (r *Repository) Format() codec.Format {
	return r.format
}

// Close releases resources. Repository holds no open handles.
func (r *Repository) Close() error {
	return nil
}

// LoadContacts reads and decodes the file.
func (r *Repository) LoadContacts(ctx context.Context) ([]core.Contact, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, r.path)
		}
		return nil, err
	}

	contacts, err := codec.Decode(r.format, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", storage.ErrSerializationFailed, r.path, err)
	}
	r.logger.Debug("read contact file", "path", r.path, "format", r.format, "records", len(contacts))
	return contacts, nil
}

// SaveContacts encodes contacts and replaces the file. The data is written to
// a temporary file in the same directory and renamed over the target, so a
// failed save leaves the previous file intact.
func (r *Repository) SaveContacts(ctx context.Context, contacts []core.Contact) error {
	data, err := codec.Encode(r.format, contacts)
	if err != nil {
		return fmt.Errorf("%w: %w", storage.ErrSerializationFailed, err)
	}
	if err := writeFileAtomic(r.path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", storage.ErrWriteFailed, r.path, err)
	}
	r.logger.Debug("wrote contact file", "path", r.path, "format", r.format, "records", len(contacts))
	return nil
}

// targetPerm keeps the permissions of an existing file; new files get filePerm.
func targetPerm(path string) fs.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return filePerm
}

func writeFileAtomic(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(targetPerm(path)); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
