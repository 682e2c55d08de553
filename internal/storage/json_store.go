package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ritual-app/ritual/internal/logger"
)

type document struct {
	Version int                        `json:"version"`
	Records map[string]json.RawMessage `json:"records"`
}

// JSONStore keeps all records in a single versioned JSON file.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		Records: make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'ritual init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		// A corrupt file degrades to an empty store rather than blocking the
		// session. The domain layer reseeds defaults per record.
		logger.Warn("storage file is unreadable, starting from empty records", "path", s.path, "error", err)
		s.doc = &document{Version: 1}
	}

	if s.doc.Records == nil {
		s.doc.Records = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) (string, bool, error) {
	if s.doc == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	raw, ok := s.doc.Records[key]
	if !ok {
		return "", false, nil
	}

	return string(raw), true, nil
}

func (s *JSONStore) Set(key, value string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	if !json.Valid([]byte(value)) {
		return fmt.Errorf("record %q is not valid JSON", key)
	}

	s.doc.Records[key] = json.RawMessage(value)
	return s.save()
}

func (s *JSONStore) Path() string {
	return s.path
}
