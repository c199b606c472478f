package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"cvgen-utils/internal/logging/types"
)

// FileAdapter implements the LogAdapter interface for append-only file output
type FileAdapter struct {
	name   string
	path   string
	file   *os.File
	mu     sync.Mutex
	closed bool
}

// FileConfig represents configuration for the file adapter
type FileConfig struct {
	FilePath   string `yaml:"file_path"`
	CreateDirs bool   `yaml:"create_dirs"`
}

// NewFileAdapter creates a new file adapter, opening the target file for append
func NewFileAdapter(name string, config FileConfig) (*FileAdapter, error) {
	if config.FilePath == "" {
		return nil, fmt.Errorf("file_path is required for file adapter")
	}

	if config.CreateDirs {
		if err := os.MkdirAll(filepath.Dir(config.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &FileAdapter{
		name: name,
		path: config.FilePath,
		file: file,
	}, nil
}

// Write writes a log entry to the file as a JSON line
func (a *FileAdapter) Write(entry *types.LogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return fmt.Errorf("file adapter %s is closed", a.name)
	}

	output, err := formatJSON(entry)
	if err != nil {
		return fmt.Errorf("failed to format log entry: %w", err)
	}

	_, err = fmt.Fprintln(a.file, output)
	return err
}

// Close flushes and closes the underlying file
func (a *FileAdapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return nil
	}
	a.closed = true
	return a.file.Close()
}

// Health checks that the log file is still writable
func (a *FileAdapter) Health() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return fmt.Errorf("file adapter %s is closed", a.name)
	}
	if _, err := os.Stat(a.path); err != nil {
		return err
	}
	return nil
}

// Name returns the name of the adapter
func (a *FileAdapter) Name() string {
	return a.name
}
