package filestorage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/hostel/internal/pkg/logger"
)

// LocalStorage resolves data files inside a base directory on the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where data files live
}

// NewLocalStorage creates a new LocalStorage instance, creating basePath if needed.
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if basePath == "" {
		basePath = "."
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create data directory")
		return nil, fmt.Errorf("failed to create data directory %s: %w", basePath, err)
	}
	logger.Debug().Str("path", basePath).Msg("Data directory ensured")

	return &LocalStorage{basePath: basePath}, nil
}

// File returns a LineFile for name, relative to the base path unless absolute.
func (ls *LocalStorage) File(name string) *LocalFile {
	path := name
	if !filepath.IsAbs(name) {
		path = filepath.Join(ls.basePath, name)
	}
	return &LocalFile{path: path}
}

// BasePath returns the data directory
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// LocalFile is a LineFile on the local filesystem
type LocalFile struct {
	path string
}

var _ LineFile = (*LocalFile)(nil)

// Path returns the full filesystem path
func (f *LocalFile) Path() string {
	return f.path
}

// ReadLines reads all lines of the file. Trailing "\r" is stripped.
func (f *LocalFile) ReadLines() ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Debug().Str("path", f.path).Msg("Data file does not exist yet, treating as empty")
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", f.path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", f.path, err)
	}
	return lines, nil
}

// AppendLine appends line plus a newline to the file
func (f *LocalFile) AppendLine(line string) error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", f.path, err)
	}

	if _, err := file.WriteString(line + "\n"); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to append to %s: %w", f.path, err)
	}
	return file.Close()
}

// WriteLines rewrites the file through a uniquely named temp file and a rename,
// so a failed write leaves the previous contents in place.
func (f *LocalFile) WriteLines(lines []string) error {
	dir := filepath.Dir(f.path)
	tmpPath := filepath.Join(dir, "."+filepath.Base(f.path)+"."+uuid.New().String()+".tmp")

	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", f.path, err)
	}

	w := bufio.NewWriter(tmp)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
			return fmt.Errorf("failed to write %s: %w", f.path, err)
		}
	}
	if err := w.Flush(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to flush %s: %w", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file for %s: %w", f.path, err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		logger.Error().Err(err).Str("path", f.path).Msg("Failed to replace data file")
		return fmt.Errorf("failed to replace %s: %w", f.path, err)
	}
	return nil
}

// Truncate empties the file, creating it if it does not exist
func (f *LocalFile) Truncate() error {
	file, err := os.OpenFile(f.path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to truncate %s: %w", f.path, err)
	}
	return file.Close()
}
