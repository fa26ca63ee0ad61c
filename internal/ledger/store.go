package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/UltraPrikol/wallet/internal/model"
)

// ErrInvalidIndex is returned when a record index is outside the ledger.
var ErrInvalidIndex = errors.New("invalid index")

// Store owns the ledger file and the in-memory records loaded from it.
// A Store is loaded once per process and handed to each operation.
type Store struct {
	path    string
	records []model.Record
	missing bool
}

// New returns an empty Store for path without touching the file system.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the ledger at path. A missing file yields an empty Store whose
// Missing method reports true; any other error is returned.
func Load(path string) (*Store, error) {
	s := &Store{path: path}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.missing = true
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger %s: %w", path, err)
	}
	s.records = records
	return s, nil
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return s.path
}

// Missing reports whether the file did not exist at load time.
func (s *Store) Missing() bool {
	return s.missing
}

// Records returns the in-memory records in file order. The slice is shared
// with the Store.
func (s *Store) Records() []model.Record {
	return s.records
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// At returns the record at zero-based index i.
func (s *Store) At(i int) (model.Record, error) {
	if i < 0 || i >= len(s.records) {
		return model.Record{}, fmt.Errorf("%w: %d (ledger has %d records)", ErrInvalidIndex, i, len(s.records))
	}
	return s.records[i], nil
}

// Append adds rec to the ledger and persists it in append mode. The
// in-memory ledger is left unchanged if the write fails.
func (s *Store) Append(rec model.Record) error {
	s.records = append(s.records, rec)
	if err := s.PersistAppend(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return err
	}
	return nil
}

// Edit assigns value to field of the record at index i and rewrites the
// file. Index and field are validated before anything is touched. If the
// rewrite fails, both the record and the file keep their previous contents.
func (s *Store) Edit(i int, field model.Field, value string) error {
	if _, err := s.At(i); err != nil {
		return err
	}
	prev, err := s.records[i].Get(field)
	if err != nil {
		return err
	}

	if err := s.records[i].Set(field, value); err != nil {
		return err
	}
	if err := s.PersistRewrite(); err != nil {
		_ = s.records[i].Set(field, prev)
		return err
	}
	return nil
}

// PersistAppend writes the last in-memory record to the end of the file.
// The header is written first when the file is new or empty.
func (s *Store) PersistAppend() error {
	if len(s.records) == 0 {
		return errors.New("append: ledger is empty")
	}

	needsHeader := false
	info, err := os.Stat(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		needsHeader = true
	case err != nil:
		return fmt.Errorf("stat ledger %s: %w", s.path, err)
	case info.Size() == 0:
		needsHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger %s: %w", s.path, err)
	}
	defer f.Close()

	if needsHeader {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := AppendRecords(f, s.records[len(s.records)-1:]); err != nil {
		return fmt.Errorf("appending to ledger %s: %w", s.path, err)
	}
	return f.Close()
}

// PersistRewrite writes the header and every record to a temporary file in
// the ledger's directory and renames it over the ledger, so a failed write
// leaves the previous file intact.
func (s *Store) PersistRewrite() error {
	f, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating ledger %s: %w", s.path, err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)
	defer f.Close()

	if err := WriteRecords(f, s.records); err != nil {
		return fmt.Errorf("writing ledger %s: %w", s.path, err)
	}
	if err := f.Chmod(0o644); err != nil {
		return fmt.Errorf("writing ledger %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing ledger %s: %w", s.path, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing ledger %s: %w", s.path, err)
	}
	return nil
}
