package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	metadataFile = "metadata.json"
	svgFile      = "splash.svg"
)

// ErrInvalidID indicates a snapshot id that would escape the store.
var ErrInvalidID = errors.New("storage: invalid snapshot id")

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// SnapshotMetadata describes one archived splash frame.
type SnapshotMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Seed      int64     `json:"seed"`
	Ticks     int       `json:"ticks"`
	Yaw       float64   `json:"yaw"`
	Pitch     float64   `json:"pitch"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Particles int       `json:"particles"`
	Visible   int       `json:"visible"`
	Format    string    `json:"format"`
	Theme     string    `json:"theme"`
}

// Save writes the metadata and svg under a new id and returns it. The id
// and timestamp fields of meta are filled in.
func (s *Store) Save(meta SnapshotMetadata, svg string) (string, error) {
	ts := s.now()
	id := fmt.Sprintf("splash_%d_%d", ts.Unix(), meta.Seed)
	dir := filepath.Join(s.baseDir, id)
	for i := 1; exists(dir); i++ {
		id = fmt.Sprintf("splash_%d_%d_%d", ts.Unix(), meta.Seed, i)
		dir = filepath.Join(s.baseDir, id)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta.ID = id
	meta.Timestamp = ts

	if err := writeSnapshot(dir, meta, svg); err != nil {
		os.RemoveAll(dir)
		return "", err
	}
	return id, nil
}

func writeSnapshot(dir string, meta SnapshotMetadata, svg string) error {
	metaFile, err := os.Create(filepath.Join(dir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, svgFile), []byte(svg), 0644)
}

// List returns every readable snapshot, newest first.
func (s *Store) List() ([]SnapshotMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SnapshotMetadata{}, nil
		}
		return nil, err
	}

	snaps := make([]SnapshotMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		snaps = append(snaps, *meta)
	}

	sort.Slice(snaps, func(i, j int) bool {
		if snaps[i].Timestamp.Equal(snaps[j].Timestamp) {
			return snaps[i].ID > snaps[j].ID
		}
		return snaps[i].Timestamp.After(snaps[j].Timestamp)
	})
	return snaps, nil
}

func (s *Store) Load(id string) (*SnapshotMetadata, error) {
	dir, err := s.dir(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta SnapshotMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadSVG(id string) (string, error) {
	dir, err := s.dir(id)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(dir, svgFile))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Store) dir(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return filepath.Join(s.baseDir, id), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
