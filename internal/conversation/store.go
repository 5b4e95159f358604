package conversation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/diogo/termchat/internal/models"
)

// DefaultDir is the directory conversations are saved to, relative to the working directory
const DefaultDir = "conversations"

// Store saves and loads transcripts as <dir>/<name>.json
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore creates a store rooted at dir. The directory is created on first save.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultDir
	}
	return &Store{dir: dir}
}

// Dir returns the store directory
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file path for a conversation name
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Save writes the transcript under name
func (s *Store) Save(name string, t *Transcript) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	data, err := json.Marshal(t)
	if err != nil {
		return "", fmt.Errorf("failed to marshal conversation: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create conversations directory: %w", err)
	}

	path := s.Path(name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write conversation: %w", err)
	}

	return path, nil
}

// Load reads the transcript saved under name
func (s *Store) Load(name string) (*Transcript, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("conversation '%s' not found in %s", name, s.dir)
		}
		return nil, fmt.Errorf("failed to read conversation: %w", err)
	}

	var t Transcript
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse conversation %s: %w", path, err)
	}
	if t.Model == "" {
		return nil, fmt.Errorf("conversation %s has no model", path)
	}
	if t.Input == nil {
		t.Input = []models.Message{}
	}

	return &t, nil
}

// List returns the saved conversation names, sorted
func (s *Store) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read conversations directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)

	return names, nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("conversation name cannot be empty")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid conversation name '%s'", name)
	}
	return nil
}
