package storage

import (
	"context"
	"sync"
	"time"

	reportapp "github.com/pos/backend/internal/application/report"
	"go.uber.org/zap"
)

const maxSweepInterval = time.Hour

// RetentionSweeper periodically removes archived exports from disk once they
// are older than the configured retention.
type RetentionSweeper struct {
	archive   *fileSystemArchive
	retention time.Duration
	interval  time.Duration
	logger    *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRetentionSweeper returns nil when there is nothing to sweep: no retention
// configured or an archive that is not backed by the local file system.
// Object storage expiry is left to bucket lifecycle rules.
func NewRetentionSweeper(archive reportapp.ExportArchive, retention time.Duration, logger *zap.Logger) *RetentionSweeper {
	disk, ok := archive.(*fileSystemArchive)
	if !ok || retention <= 0 {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RetentionSweeper{
		archive:   disk,
		retention: retention,
		interval:  min(retention, maxSweepInterval),
		logger:    logger,
	}
}

// Start sweeps once and then keeps sweeping in the background until Stop.
func (s *RetentionSweeper) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.loop(ctx)

	s.logger.Info("export retention sweeper started",
		zap.Duration("retention", s.retention),
		zap.Duration("interval", s.interval),
	)
}

// Stop cancels the loop and waits for an in-flight sweep to finish.
func (s *RetentionSweeper) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("export retention sweeper stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *RetentionSweeper) loop(ctx context.Context) {
	defer s.wg.Done()

	s.Sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep removes every archived export older than the retention and reports
// how many files went.
func (s *RetentionSweeper) Sweep(ctx context.Context) int {
	deleted, err := s.archive.storage.CleanupOlderThan(ctx, s.retention)
	if err != nil {
		s.logger.Error("failed to sweep archived exports", zap.Error(err))
		return deleted
	}
	if deleted > 0 {
		s.logger.Info("swept archived exports",
			zap.Int("deleted", deleted),
			zap.Duration("retention", s.retention),
		)
	}
	return deleted
}
