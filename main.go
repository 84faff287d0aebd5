package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fttower/orbit/internal/app"
	"github.com/fttower/orbit/internal/config"
	"github.com/fttower/orbit/internal/index"
)

func main() {
	logFile, err := os.Create("orbit.log")
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	debug := flag.Bool("debug", false, "Enable debug mode (shows key events in status)")
	root := flag.String("root", ".", "Content root to index and explore")
	indexPath := flag.String("index", "", "Index file path (overrides config)")
	reindex := flag.Bool("reindex", false, "Rebuild the index before starting")
	watch := flag.Bool("watch", false, "Reindex automatically when files change")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *indexPath != "" {
		cfg.IndexPath = *indexPath
	}

	idx, err := loadOrBuild(cfg, *root, *reindex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, idx, *root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *debug {
		application.SetDebugMode(true)
	}
	if *watch {
		if err := application.EnableWatch(); err != nil {
			log.Printf("watch disabled: %v", err)
		}
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
		os.Exit(1)
	}
}

// loadOrBuild loads the saved index, building a fresh one when asked
// to or when no index file exists yet.
func loadOrBuild(cfg *config.Config, root string, force bool) (*index.Index, error) {
	if !force {
		idx, err := index.Load(cfg.IndexPath)
		if err == nil {
			return idx, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("index load failed, rebuilding: %v", err)
		}
	}

	builder := index.NewBuilder(root, cfg.RepoURL)
	idx, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build index: %w", err)
	}
	if err := idx.Save(cfg.IndexPath); err != nil {
		log.Printf("index save failed: %v", err)
	}
	return idx, nil
}
