package store

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"
)

// Well-known file names inside the data directory.
const (
	TodoFile    = "todos.md"
	ArchiveFile = "archive.md"

	// legacy plain-text files from before the structured format
	LegacyTodoFile    = "note.txt"
	LegacyArchiveFile = "archive.txt"
)

// Persistence is the file boundary for the engine: whole-file reads and
// writes keyed by name. The engine itself never opens files; runners read
// text here, hand it to the engine, and write the result back.
type Persistence interface {
	Read(name string) (string, error)
	Write(name, content string) error
	Has(name string) bool
	Path(name string) string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: flatTransform,
		InverseTransform:  flatInverse,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Read returns the file's content, or "" when the file does not exist yet.
func (p *persistence) Read(name string) (string, error) {
	data, err := p.d.Read(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (p *persistence) Write(name, content string) error {
	return p.d.Write(name, []byte(content))
}

func (p *persistence) Has(name string) bool {
	return p.d.Has(name)
}

func (p *persistence) Path(name string) string {
	return filepath.Join(p.basePath, name)
}

// Keys map straight to file names under the base path so the files stay
// hand-editable.
func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func flatInverse(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
