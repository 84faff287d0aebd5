package model

// OpenSet tracks which folder paths are currently expanded. A node's
// children are laid out and rendered iff the node is the root or its
// path is in the open set. The set persists across layout recomputes
// and is only cleared by a full reset.
type OpenSet struct {
	open map[string]struct{}
}

// NewOpenSet creates an empty open set
func NewOpenSet() *OpenSet {
	return &OpenSet{open: make(map[string]struct{})}
}

// Contains reports whether the folder at path is expanded
func (s *OpenSet) Contains(path string) bool {
	_, ok := s.open[path]
	return ok
}

// Add marks the folder at path as expanded
func (s *OpenSet) Add(path string) {
	s.open[path] = struct{}{}
}

// Remove collapses the folder at path
func (s *OpenSet) Remove(path string) {
	delete(s.open, path)
}

// Toggle flips the expanded state and returns the new state
func (s *OpenSet) Toggle(path string) bool {
	if s.Contains(path) {
		delete(s.open, path)
		return false
	}
	s.open[path] = struct{}{}
	return true
}

// Clear collapses everything
func (s *OpenSet) Clear() {
	s.open = make(map[string]struct{})
}

// Len returns the number of expanded folders
func (s *OpenSet) Len() int {
	return len(s.open)
}

// Paths returns the expanded paths in unspecified order
func (s *OpenSet) Paths() []string {
	paths := make([]string, 0, len(s.open))
	for p := range s.open {
		paths = append(paths, p)
	}
	return paths
}
