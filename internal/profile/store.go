package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-builder/internal/types"
)

// Store persists candidate profiles as JSON snapshots in a directory
type Store struct {
	dir      string
	validate *validator.Validate
	now      func() time.Time
}

// NewStore creates a Store rooted at dir, creating it if needed
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile directory %s: %w", dir, err)
	}
	return &Store{
		dir:      dir,
		validate: validator.New(),
		now:      time.Now,
	}, nil
}

// Save writes the profile to a timestamped JSON file and returns its path.
// CreatedAt is stamped on first save; an existing timestamp is preserved so
// that save/load round-trips are byte-stable.
func (s *Store) Save(p *types.Profile) (string, error) {
	if err := s.validate.Struct(p); err != nil {
		return "", fmt.Errorf("invalid profile: %w", err)
	}

	if p.CreatedAt == "" {
		p.CreatedAt = s.now().UTC().Format(time.RFC3339)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize profile: %w", err)
	}

	path := filepath.Join(s.dir, s.filename(p.Name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write profile %s: %w", path, err)
	}
	return path, nil
}

// Load reads a profile JSON file, validates it against the embedded schema,
// and unmarshals it.
func (s *Store) Load(path string) (*types.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return Parse(data)
}

// List returns the profile JSON files in the store directory, newest first
func (s *Store) List() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, "profile_*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	return matches, nil
}

// Parse validates raw profile JSON against the schema and unmarshals it
func Parse(data []byte) (*types.Profile, error) {
	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}
	return &p, nil
}

// filename builds the snapshot name: profile_<name>_<YYYYMMDD_HHMMSS>.json
func (s *Store) filename(name string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	if slug == "" {
		slug = "candidate"
	}
	return fmt.Sprintf("profile_%s_%s.json", slug, s.now().Format("20060102_150405"))
}
