// Package store implements the persistent password store: an in-memory
// index of entries keyed by service name, write-through backed by a JSON
// file on disk.
//
// The file is the single source of truth across process restarts. It holds
// one JSON object mapping each service name to its username and password;
// every successful mutation rewrites it from current state. Rewrites go
// through a temporary file renamed into place, so a failed write leaves
// the previous content intact rather than a truncated file.
//
// A Store is not safe for concurrent use and does not guard against other
// processes writing the same file. Update re-reads the file before
// rewriting, which narrows but does not close that race.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/passkeeper/internal/common"
)

// fileEntry is the on-disk shape of a single record. The service name is
// the enclosing object key, so only username and password are stored here.
type fileEntry struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Store owns the canonical mapping from service name to Entry and the
// backing file path. All lookup, mutation and duplicate checking flows
// through it; there is exactly one Store per backing file in a process.
type Store struct {
	entries map[string]Entry
	path    string
}

// Open loads the store persisted at path, or initializes a new empty
// store file if none exists yet. A file that exists but does not parse is
// an error (common.ErrorMalformedStore): refusing to start beats quietly
// dropping unreadable records. Any error from Open is fatal for the
// caller; there is no usable Store without a readable backing file.
func Open(path string) (*Store, error) {
	s := &Store{entries: make(map[string]Entry), path: path}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		raw, err := readRaw(path)
		if err != nil {
			return nil, err
		}
		s.entries = fromRaw(raw)
	case errors.Is(err, fs.ErrNotExist):
		if err := writeRaw(path, map[string]fileEntry{}); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	return s, nil
}

// Path returns the backing file path, fixed for the lifetime of the Store.
func (s *Store) Path() string {
	return s.path
}

// Get returns the entry stored for service. The lookup is exact and
// case-sensitive. A missing key reports common.ErrorNotFound, which is an
// expected outcome rather than a failure.
func (s *Store) Get(service string) (Entry, error) {
	e, ok := s.entries[service]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", common.ErrorNotFound, service)
	}
	return e, nil
}

// Exists reports whether service is already taken. The dialog layer uses
// it to re-prompt before constructing an entry; Add enforces the same rule
// again, so uniqueness never depends on the caller checking first.
func (s *Store) Exists(service string) bool {
	_, ok := s.entries[service]
	return ok
}

// Add inserts a new entry into the index and rewrites the persisted form
// with the full current state. A service name that is already present is
// rejected with common.ErrorDuplicateService; replacing an existing record
// must go through Update.
//
// If persisting fails the in-memory index is not rolled back: memory may
// run ahead of disk until the next successful write or a restart re-reads
// the file. The returned error wraps common.ErrorPersist in that case.
func (s *Store) Add(e Entry) error {
	if _, ok := s.entries[e.Service]; ok {
		return fmt.Errorf("%w: %s", common.ErrorDuplicateService, e.Service)
	}

	s.entries[e.Service] = e
	return writeRaw(s.path, toRaw(s.entries))
}

// Update replaces the username and password stored for e.Service. The
// persisted form is re-read from disk first, so records written to the
// file outside this process since Open are not clobbered. If the service
// is absent from the freshly read state the file is left untouched and
// common.ErrorNotFound is reported; a missing or empty file counts as an
// empty state. After a successful rewrite the in-memory index is replaced
// with the merged state, keeping index and file consistent.
func (s *Store) Update(e Entry) error {
	raw, err := readRaw(s.path)
	if err != nil {
		return err
	}

	if _, ok := raw[e.Service]; !ok {
		return fmt.Errorf("%w: %s", common.ErrorNotFound, e.Service)
	}

	raw[e.Service] = fileEntry{Username: e.Username, Password: e.Password}
	if err := writeRaw(s.path, raw); err != nil {
		return err
	}

	s.entries = fromRaw(raw)
	return nil
}

// ListItem is one row of List output. Passwords are deliberately not part
// of it: listing is a screen-facing operation.
type ListItem struct {
	Service  string
	Username string
}

// List returns a (service, username) pair for every stored entry, in
// unspecified order.
func (s *Store) List() []ListItem {
	items := make([]ListItem, 0, len(s.entries))
	for service, e := range s.entries {
		items = append(items, ListItem{Service: service, Username: e.Username})
	}
	return items
}

// readRaw parses the persisted aggregate. A missing file and an empty
// file both read as an empty aggregate; anything else that fails to parse
// reports common.ErrorMalformedStore.
func readRaw(path string) (map[string]fileEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]fileEntry{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	raw := map[string]fileEntry{}
	if len(bytes.TrimSpace(data)) == 0 {
		return raw, nil
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrorMalformedStore, path, err)
	}
	return raw, nil
}

// writeRaw serializes the aggregate to a uniquely named temporary file in
// the target directory and renames it into place. Failures wrap
// common.ErrorPersist.
func writeRaw(path string, raw map[string]fileEntry) error {
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode: %v", common.ErrorPersist, err)
	}

	tmp := filepath.Join(filepath.Dir(path), fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.New()))
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %v", common.ErrorPersist, tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: rename %s: %v", common.ErrorPersist, path, err)
	}
	return nil
}

func toRaw(entries map[string]Entry) map[string]fileEntry {
	raw := make(map[string]fileEntry, len(entries))
	for service, e := range entries {
		raw[service] = fileEntry{Username: e.Username, Password: e.Password}
	}
	return raw
}

func fromRaw(raw map[string]fileEntry) map[string]Entry {
	entries := make(map[string]Entry, len(raw))
	for service, fe := range raw {
		entries[service] = Entry{Service: service, Username: fe.Username, Password: fe.Password}
	}
	return entries
}
