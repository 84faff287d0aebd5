package index

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/fttower/orbit/internal/model"
)

// PreviewSize is how many bytes of each file are stored for preview and
// content scoring.
const PreviewSize = 500

var excludedDirs = map[string]struct{}{
	"node_modules": {},
	"venv":         {},
	"__pycache__":  {},
	".git":         {},
}

var excludedExtensions = map[string]struct{}{
	".pyc": {}, ".pyo": {}, ".so": {}, ".dylib": {}, ".dll": {},
	".exe": {}, ".bin": {},
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {},
	".ico": {}, ".svg": {},
	".mp4": {}, ".avi": {}, ".mov": {}, ".mp3": {}, ".wav": {},
	".zip": {}, ".tar": {}, ".gz": {},
}

var (
	headingRe  = regexp.MustCompile(`^#+\s*`)
	codeSpanRe = regexp.MustCompile("`([^`]+)`")
)

// Builder scans a content root and produces an Index
type Builder struct {
	Root    string
	RepoURL string // base URL for per-file links, may be empty
}

// NewBuilder creates a builder for the given content root
func NewBuilder(root, repoURL string) *Builder {
	return &Builder{Root: root, RepoURL: strings.TrimSuffix(repoURL, "/")}
}

// Build walks the root and indexes every acceptable file, then builds
// the tree structure from the indexed paths.
func (b *Builder) Build() (*Index, error) {
	info, err := os.Stat(b.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("root is not a directory: %s", b.Root)
	}

	idx := &Index{Tree: model.NewRoot(filepath.Base(b.Root))}

	err = filepath.WalkDir(b.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		if path == b.Root {
			return nil
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, excluded := excludedDirs[name]; excluded {
				return filepath.SkipDir
			}
			return nil
		}
		if _, excluded := excludedExtensions[strings.ToLower(filepath.Ext(name))]; excluded {
			return nil
		}

		file, err := b.indexFile(path)
		if err != nil {
			return nil // unreadable file, skip
		}
		idx.Files = append(idx.Files, *file)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk root: %w", err)
	}

	sort.SliceStable(idx.Files, func(i, j int) bool {
		return idx.Files[i].Path < idx.Files[j].Path
	})
	buildTree(idx)

	return idx, nil
}

// indexFile reads one file and extracts its metadata. Markdown files
// get title/headers/keywords extraction; everything else uses the file
// stem as its title.
func (b *Builder) indexFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	content := string(data)

	rel, err := filepath.Rel(b.Root, path)
	if err != nil {
		return nil, err
	}
	rel = filepath.ToSlash(rel)

	name := filepath.Base(path)
	stem := strings.TrimSuffix(name, filepath.Ext(name))

	file := &File{
		Name:     name,
		Path:     rel,
		FullPath: path,
		Title:    stem,
		Size:     int64(len(data)),
		Type:     strings.ToLower(filepath.Ext(name)),
	}
	if file.Type == "" {
		file.Type = "file"
	}
	if b.RepoURL != "" {
		file.GithubURL = b.RepoURL + "/" + rel
	}

	if strings.EqualFold(filepath.Ext(name), ".md") {
		title, headers, keywords := extractMarkdownMeta(content)
		if title != "" {
			file.Title = title
		}
		file.Headers = headers
		file.Keywords = keywords
	}

	if len(content) > PreviewSize {
		content = content[:PreviewSize]
	}
	file.Content = content

	return file, nil
}

// extractMarkdownMeta pulls the title (first H1), all headings, and the
// inline code spans used as keywords.
func extractMarkdownMeta(content string) (title string, headers []string, keywords []string) {
	seen := make(map[string]struct{})
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "# ") && title == "" {
			title = strings.TrimSpace(line[2:])
		}
		if strings.HasPrefix(line, "#") {
			headers = append(headers, strings.TrimSpace(headingRe.ReplaceAllString(line, "")))
		}
		for _, m := range codeSpanRe.FindAllStringSubmatch(line, -1) {
			if _, dup := seen[m[1]]; !dup {
				seen[m[1]] = struct{}{}
				keywords = append(keywords, m[1])
			}
		}
	}
	return title, headers, keywords
}

// buildTree reconstructs the folder hierarchy from the indexed file
// paths. Files are already sorted by path, so sibling order is stable.
func buildTree(idx *Index) {
	folders := map[string]*model.Node{"": idx.Tree}
	for i := range idx.Files {
		f := &idx.Files[i]
		parts := strings.Split(f.Path, model.PathSeparator)
		parent := idx.Tree
		for depth, part := range parts {
			current := strings.Join(parts[:depth+1], model.PathSeparator)
			if depth == len(parts)-1 {
				parent.AddChild(part, model.TypeFile)
				break
			}
			folder, ok := folders[current]
			if !ok {
				folder = parent.AddChild(part, model.TypeFolder)
				folders[current] = folder
			}
			parent = folder
		}
	}
}
