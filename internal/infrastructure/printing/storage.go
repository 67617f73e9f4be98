package printing

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"
)

// StoreResult contains the result of archiving an export
type StoreResult struct {
	// Key is the storage key relative to the archive root
	Key string
	// Size is the file size in bytes
	Size int64
}

// FileSystemStorageConfig contains configuration for file system storage
type FileSystemStorageConfig struct {
	// BasePath is the root directory for archived exports
	// Default: /data/exports
	BasePath string
	// Logger for operations
	Logger *zap.Logger
}

// FileSystemStorage archives generated exports on the local file system
type FileSystemStorage struct {
	basePath string
	logger   *zap.Logger
}

// NewFileSystemStorage creates a new file system archive
func NewFileSystemStorage(config *FileSystemStorageConfig) (*FileSystemStorage, error) {
	if config == nil {
		config = &FileSystemStorageConfig{}
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = "/data/exports"
	}

	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "failed to create storage directory: "+basePath, err)
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &FileSystemStorage{
		basePath: basePath,
		logger:   logger,
	}, nil
}

// Store writes data under key, creating intermediate directories.
// The content type is not persisted on the file system.
func (s *FileSystemStorage) Store(ctx context.Context, key string, data []byte, _ string) (*StoreResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "operation cancelled", err)
	}
	if len(data) == 0 {
		return nil, NewRenderError(ErrCodeStorageFailed, "export data is empty", nil)
	}

	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "failed to create directory", err)
	}
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "failed to write export file", err)
	}

	s.logger.Info("export archived",
		zap.String("path", fullPath),
		zap.Int("size", len(data)))

	return &StoreResult{
		Key:  filepath.ToSlash(filepath.Clean(key)),
		Size: int64(len(data)),
	}, nil
}

// Get opens an archived export
func (s *FileSystemStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewRenderError(ErrCodeStorageFailed, "operation cancelled", err)
	}

	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, NewRenderError(ErrCodeStorageFailed, "export not found", err)
		}
		return nil, NewRenderError(ErrCodeStorageFailed, "failed to open export file", err)
	}
	return file, nil
}

// Delete removes an archived export. Missing files are not an error.
func (s *FileSystemStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return NewRenderError(ErrCodeStorageFailed, "operation cancelled", err)
	}

	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return NewRenderError(ErrCodeStorageFailed, "failed to delete export file", err)
	}
	s.logger.Info("export deleted", zap.String("key", key))
	return nil
}

// CleanupOlderThan removes archived files older than age
func (s *FileSystemStorage) CleanupOlderThan(ctx context.Context, age time.Duration) (int, error) {
	cutoff := time.Now().Add(-age)
	deleted := 0

	err := filepath.Walk(s.basePath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if info.IsDir() || !info.ModTime().Before(cutoff) {
			return nil
		}
		if err := os.Remove(path); err == nil {
			deleted++
			s.logger.Debug("deleted old export", zap.String("path", path))
		}
		return nil
	})
	if err != nil && err != context.Canceled && err != context.DeadlineExceeded {
		return deleted, NewRenderError(ErrCodeStorageFailed, "cleanup walk failed", err)
	}

	s.logger.Info("cleanup completed",
		zap.Int("deleted", deleted),
		zap.Duration("age", age))
	return deleted, nil
}

// resolve maps a key to a path under the base directory, rejecting traversal.
func (s *FileSystemStorage) resolve(key string) (string, error) {
	cleanKey := filepath.Clean(key)
	if key == "" || filepath.IsAbs(cleanKey) || containsDotDot(key) {
		s.logger.Warn("blocked potentially malicious path", zap.String("key", key))
		return "", NewRenderError(ErrCodeStorageFailed, "invalid path", nil)
	}

	absBase, err := filepath.Abs(s.basePath)
	if err != nil {
		return "", NewRenderError(ErrCodeStorageFailed, "failed to resolve base path", err)
	}
	absPath, err := filepath.Abs(filepath.Join(s.basePath, cleanKey))
	if err != nil {
		return "", NewRenderError(ErrCodeStorageFailed, "failed to resolve file path", err)
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		s.logger.Warn("path escape attempt blocked",
			zap.String("key", key),
			zap.String("absPath", absPath))
		return "", NewRenderError(ErrCodeStorageFailed, "invalid path", nil)
	}
	return absPath, nil
}

// containsDotDot checks if a path contains ".." components
func containsDotDot(path string) bool {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == filepath.Separator
	})
	return slices.Contains(parts, "..")
}
