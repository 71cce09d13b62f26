package waste

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// DefaultDataFile is the state file name used when no path is configured.
const DefaultDataFile = "waste_data.json"

// ErrCorrupt classifies a state file that exists but cannot be used.
var ErrCorrupt = errors.New("corrupt waste data")

// Store loads and saves the Record as a pretty-printed JSON file.
// Writes overwrite the file in place; a torn write is repaired by the next Load.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a store for path (DefaultDataFile when empty).
func NewStore(path string, logger *slog.Logger) *Store {
	if path == "" {
		path = DefaultDataFile
	}
	return &Store{path: path, logger: logger}
}

// Path returns the state file location.
func (s *Store) Path() string { return s.path }

// Load reads the state file. A missing file is a first run: the default
// record is written and returned. A corrupt file is logged and overwritten
// with the default. The returned error only reports a failure to write that
// default; the record is usable either way.
func (s *Store) Load() (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s.reset()
		}
		s.warn("waste data unreadable, resetting", err)
		return s.reset()
	}
	rec, err := decodeRecord(data)
	if err != nil {
		s.warn("waste data corrupt, resetting", err)
		return s.reset()
	}
	return rec, nil
}

// Save writes rec to the state file.
func (s *Store) Save(rec *Record) error {
	if rec == nil {
		rec = DefaultRecord()
	}
	data, err := encodeRecord(rec)
	if err != nil {
		return fmt.Errorf("encode waste data: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write waste data %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) reset() (*Record, error) {
	rec := DefaultRecord()
	if err := s.Save(rec); err != nil {
		return rec, err
	}
	return rec, nil
}

func (s *Store) warn(msg string, err error) {
	if s.logger != nil {
		s.logger.Warn(msg, "path", s.path, "error", err)
	}
}

func decodeRecord(data []byte) (*Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if fields == nil { // literal null
		return nil, fmt.Errorf("%w: not an object", ErrCorrupt)
	}
	rawTotal, ok := fields["total_seconds"]
	if !ok {
		return nil, fmt.Errorf("%w: missing total_seconds", ErrCorrupt)
	}
	rec := DefaultRecord()
	if err := json.Unmarshal(rawTotal, &rec.TotalSeconds); err != nil {
		return nil, fmt.Errorf("%w: total_seconds: %v", ErrCorrupt, err)
	}
	if rec.TotalSeconds < 0 {
		return nil, fmt.Errorf("%w: negative total_seconds %d", ErrCorrupt, rec.TotalSeconds)
	}
	if rawHistory, ok := fields["history"]; ok && !bytes.Equal(bytes.TrimSpace(rawHistory), []byte("null")) {
		if err := json.Unmarshal(rawHistory, &rec.History); err != nil {
			return nil, fmt.Errorf("%w: history: %v", ErrCorrupt, err)
		}
	}
	return rec, nil
}

func encodeRecord(rec *Record) ([]byte, error) {
	out := *rec
	if out.History == nil {
		out.History = []SessionEntry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
