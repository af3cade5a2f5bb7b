package task

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"mdf_gestor/internal/repository"
)

// minUploadAge keeps just-written files out of a sweep that races an
// in-flight create.
const minUploadAge = 24 * time.Hour

// CleanupTask periodically removes uploaded image files that no board
// references anymore (replaced images, deleted boards). Only meaningful for
// the local storage provider.
type CleanupTask struct {
	boardRepo repository.BoardRepository
	uploadDir string
	spec      string
	logger    *zap.Logger
	cron      *cron.Cron
}

func NewCleanupTask(boardRepo repository.BoardRepository, uploadDir, spec string, logger *zap.Logger) *CleanupTask {
	if spec == "" {
		spec = "0 3 * * *" // daily, 03:00
	}
	return &CleanupTask{
		boardRepo: boardRepo,
		uploadDir: uploadDir,
		spec:      spec,
		logger:    logger,
	}
}

func (t *CleanupTask) Start() error {
	t.cron = cron.New()
	if _, err := t.cron.AddFunc(t.spec, t.run); err != nil {
		return err
	}
	t.cron.Start()
	t.logger.Info("upload cleanup task started", zap.String("spec", t.spec))
	return nil
}

func (t *CleanupTask) Stop() {
	if t.cron != nil {
		t.cron.Stop()
	}
}

func (t *CleanupTask) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	urls, err := t.boardRepo.ListImageURLs(ctx)
	if err != nil {
		t.logger.Error("cleanup: list image urls", zap.Error(err))
		return
	}

	referenced := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		referenced[filepath.Base(url)] = struct{}{}
	}

	entries, err := os.ReadDir(t.uploadDir)
	if err != nil {
		t.logger.Error("cleanup: read upload dir", zap.Error(err))
		return
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		if _, ok := referenced[entry.Name()]; ok {
			continue
		}
		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) < minUploadAge {
			continue
		}
		if err := os.Remove(filepath.Join(t.uploadDir, entry.Name())); err != nil {
			t.logger.Warn("cleanup: remove file", zap.String("file", entry.Name()), zap.Error(err))
			continue
		}
		removed++
	}

	if removed > 0 {
		t.logger.Info("cleanup: removed orphaned uploads", zap.Int("count", removed))
	}
}
