package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fttower/orbit/internal/index"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: orbit-index [options] <content-root>

Scans a directory of markdown files and writes a search index.

Options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  # Index the current directory
  orbit-index .

  # Index a repo and link files back to GitHub
  orbit-index -repo https://github.com/user/notes/blob/main -o notes.json ~/notes
`)
	}

	output := flag.String("o", "index.json", "Output index file")
	repoURL := flag.String("repo", "", "Base URL for per-file links")
	verbose := flag.Bool("v", false, "Print indexed files")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	root := flag.Arg(0)

	builder := index.NewBuilder(root, *repoURL)
	idx, err := builder.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		for _, f := range idx.Files {
			fmt.Printf("%s (%d bytes)\n", f.Path, f.Size)
		}
	}

	if err := idx.Save(*output); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	stats := idx.Stats()
	fmt.Printf("Indexed %d files in %d folders -> %s\n", stats.TotalFiles, stats.TotalFolders, *output)
}
