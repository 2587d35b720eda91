package util

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// UploadSweeper removes uploaded logo and signature files once they are older
// than maxAge. Generated certificate PDFs are never touched.
type UploadSweeper struct {
	dir    string
	maxAge time.Duration
	cron   *cron.Cron
	now    func() time.Time
}

func NewUploadSweeper(dir string, maxAge time.Duration, schedule string) (*UploadSweeper, error) {
	if maxAge <= 0 {
		return nil, fmt.Errorf("upload retention must be positive, got %s", maxAge)
	}

	s := &UploadSweeper{
		dir:    dir,
		maxAge: maxAge,
		cron:   cron.New(),
		now:    time.Now,
	}

	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}

	return s, nil
}

// Start runs one sweep immediately and then follows the schedule.
func (s *UploadSweeper) Start() {
	go s.run()
	s.cron.Start()
	slog.Info("Upload sweeper started", "dir", s.dir, "maxAge", s.maxAge.String())
}

func (s *UploadSweeper) Stop() {
	<-s.cron.Stop().Done()
}

func (s *UploadSweeper) run() {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Panic occurred in upload sweeper", "panic", r)
		}
	}()

	startTime := time.Now()
	removed, err := s.Sweep()
	if err != nil {
		slog.Error("Upload sweep failed", "error", err, "duration", time.Since(startTime))
		return
	}
	slog.Info("Upload sweep completed", "removed", removed, "duration", time.Since(startTime))
}

// Sweep deletes expired uploads and returns how many files were removed.
func (s *UploadSweeper) Sweep() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := s.now().Add(-s.maxAge)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !IsUploadName(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			slog.Warn("Upload sweep stat failed", "file", entry.Name(), "error", err)
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			slog.Warn("Upload sweep remove failed", "file", entry.Name(), "error", err)
			continue
		}
		removed++
	}

	return removed, nil
}
