package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	reportapp "github.com/pos/backend/internal/application/report"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/infrastructure/config"
	"github.com/pos/backend/internal/infrastructure/printing"
	"go.uber.org/zap"
)

var (
	_ reportapp.ExportArchive = (*S3ExportArchive)(nil)
	_ reportapp.ExportArchive = (*fileSystemArchive)(nil)
)

// fileSystemArchive adapts printing.FileSystemStorage to the archive contract
type fileSystemArchive struct {
	storage *printing.FileSystemStorage
}

func (a *fileSystemArchive) Store(ctx context.Context, key string, data []byte, contentType string) error {
	_, err := a.storage.Store(ctx, key, data, contentType)
	return err
}

func (a *fileSystemArchive) Fetch(ctx context.Context, key string) (*reportapp.ArchivedExport, error) {
	body, err := a.storage.Get(ctx, key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &reportapp.ArchivedExport{Body: body}, nil
}

func (a *fileSystemArchive) Delete(ctx context.Context, key string) error {
	return a.storage.Delete(ctx, key)
}

// NewExportArchive builds the archive selected by cfg.Driver.
// The "none" driver returns a nil archive, which disables archiving.
func NewExportArchive(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (reportapp.ExportArchive, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		return nil, nil
	}

	switch cfg.Driver {
	case "", config.StorageDriverNone:
		return nil, nil
	case config.StorageDriverFilesystem:
		disk, err := printing.NewFileSystemStorage(&printing.FileSystemStorageConfig{
			BasePath: cfg.BasePath,
			Logger:   logger,
		})
		if err != nil {
			return nil, err
		}
		return &fileSystemArchive{storage: disk}, nil
	case config.StorageDriverS3:
		archive, err := NewS3ExportArchive(cfg, WithLogger(logger))
		if err != nil {
			return nil, err
		}
		if err := archive.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return archive, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
