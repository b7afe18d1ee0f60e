package main

import (
	"os"

	"github.com/ikyawthetpaing/webacademy/internal/config"
	"github.com/ikyawthetpaing/webacademy/internal/indexer"
	"github.com/ikyawthetpaing/webacademy/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	logger.InitLogger()
	defer logger.Log.Sync()

	if err != nil {
		logger.Log.Fatal("failed to load config", zap.Error(err))
	}

	logger.Log.Info("indexing content",
		zap.String("content_dir", cfg.ContentDir),
		zap.String("generated_dir", cfg.GeneratedDir),
	)

	ix := indexer.New(cfg.ContentDir, cfg.GeneratedDir, logger.Log)
	summary, err := ix.Run()
	if err != nil {
		logger.Log.Error("indexing failed", zap.Error(err))
		os.Exit(1)
	}

	if len(summary.Skipped) > 0 {
		logger.Log.Warn("some content files were skipped",
			zap.Int("count", len(summary.Skipped)),
			zap.Strings("files", summary.Skipped),
		)
	}

	logger.Log.Info("indexing finished",
		zap.Int("posts", summary.Posts),
		zap.Int("pages", summary.Pages),
		zap.Int("authors", summary.Authors),
		zap.Int("courses", summary.Courses),
		zap.Int("chapters", summary.Chapters),
		zap.Int("categories", summary.Categories),
	)
}
