// Package model contains the tree model for the map
package model

import "strings"

// PathSeparator joins ancestor names into a node path.
const PathSeparator = "/"

// NodeType distinguishes folders from files
type NodeType string

const (
	TypeFolder NodeType = "folder"
	TypeFile   NodeType = "file"
)

// Node represents a single item in the map tree. Path is the unique
// identifier formed by joining ancestor names; the root uses the empty
// path. Sibling order determines left-to-right placement in the layout.
type Node struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Type     NodeType `json:"type"`
	Children []*Node  `json:"children,omitempty"`
}

// IsFolder returns true if the node can have visible children
func (n *Node) IsFolder() bool {
	return n.Type == TypeFolder
}

// NewRoot creates an empty root node. The root path is the empty string
// so that joining it with a child name yields the child's bare name.
func NewRoot(name string) *Node {
	return &Node{
		Name:     name,
		Path:     "",
		Type:     TypeFolder,
		Children: make([]*Node, 0),
	}
}

// AddChild appends a child node, deriving its path from this node's path
func (n *Node) AddChild(name string, typ NodeType) *Node {
	child := &Node{
		Name: name,
		Path: JoinPath(n.Path, name),
		Type: typ,
	}
	n.Children = append(n.Children, child)
	return child
}

// JoinPath joins a parent path and a child name
func JoinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + PathSeparator + name
}

// FindByPath finds a node by its path, depth-first. The empty path
// returns the root itself.
func (n *Node) FindByPath(path string) *Node {
	if n.Path == path {
		return n
	}
	// Paths are prefix-structured, so only descend into children whose
	// path is a prefix of the target (or the root, whose path is empty).
	stack := []*Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range cur.Children {
			if child.Path == path {
				return child
			}
			if child.Path == "" || strings.HasPrefix(path, child.Path+PathSeparator) {
				stack = append(stack, child)
			}
		}
	}
	return nil
}

// Walk visits every node depth-first in sibling order
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// AncestorChain returns every strict-prefix path of target plus the
// target itself, ordered from the outermost ancestor down to the leaf.
// The root (empty path) is not included.
//
// AncestorChain("A/B/C.md") == ["A", "A/B", "A/B/C.md"]
func AncestorChain(target string) []string {
	if target == "" {
		return nil
	}
	parts := strings.Split(target, PathSeparator)
	chain := make([]string, 0, len(parts))
	for i := range parts {
		chain = append(chain, strings.Join(parts[:i+1], PathSeparator))
	}
	return chain
}

// ParentPath returns the path of a node's parent, or the empty string
// for top-level nodes.
func ParentPath(path string) string {
	idx := strings.LastIndex(path, PathSeparator)
	if idx < 0 {
		return ""
	}
	return path[:idx]
}
