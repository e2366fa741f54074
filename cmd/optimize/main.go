package main

import (
	"log"
	"path/filepath"

	"github.com/atelier-arc/portfolio-backend/src/config"
	"github.com/atelier-arc/portfolio-backend/src/optimizer"
)

func main() {
	cfg := config.Load()

	root := filepath.Join(cfg.PublicDir, "projects")
	opt := optimizer.New(root, cfg.OptimizerCache)

	stats, err := opt.Run()
	if err != nil {
		log.Fatalf("Error optimizing images: %v\n", err)
	}

	log.Printf("Optimized %d images, skipped %d already optimized, %d failed\n",
		stats.Optimized, stats.Skipped, stats.Failed)
}
