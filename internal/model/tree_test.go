package model

import (
	"reflect"
	"testing"
)

func buildSample() *Node {
	root := NewRoot("portfolio")
	protocols := root.AddChild("Protocols", TypeFolder)
	ssh := protocols.AddChild("SSH", TypeFolder)
	ssh.AddChild("ssh-keys.md", TypeFile)
	protocols.AddChild("DNS", TypeFolder)
	root.AddChild("README.md", TypeFile)
	return root
}

func TestAddChildDerivesPaths(t *testing.T) {
	root := buildSample()

	if root.Path != "" {
		t.Errorf("root path = %q, want empty", root.Path)
	}
	if got := root.Children[0].Path; got != "Protocols" {
		t.Errorf("top-level path = %q, want %q", got, "Protocols")
	}
	if got := root.Children[0].Children[0].Path; got != "Protocols/SSH" {
		t.Errorf("nested path = %q, want %q", got, "Protocols/SSH")
	}
}

func TestFindByPath(t *testing.T) {
	root := buildSample()

	tests := []struct {
		path string
		want string // expected name, "" means not found
	}{
		{"", "portfolio"},
		{"Protocols", "Protocols"},
		{"Protocols/SSH", "SSH"},
		{"Protocols/SSH/ssh-keys.md", "ssh-keys.md"},
		{"README.md", "README.md"},
		{"Protocols/FTP", ""},
		{"Protocols/SSH/missing.md", ""},
	}
	for _, tt := range tests {
		n := root.FindByPath(tt.path)
		if tt.want == "" {
			if n != nil {
				t.Errorf("FindByPath(%q) = %q, want nil", tt.path, n.Name)
			}
			continue
		}
		if n == nil {
			t.Errorf("FindByPath(%q) = nil, want %q", tt.path, tt.want)
			continue
		}
		if n.Name != tt.want {
			t.Errorf("FindByPath(%q) = %q, want %q", tt.path, n.Name, tt.want)
		}
	}
}

func TestFindByPathDoesNotMatchPrefixSiblings(t *testing.T) {
	root := NewRoot("r")
	root.AddChild("Net", TypeFolder)
	network := root.AddChild("Network", TypeFolder)
	network.AddChild("tcp.md", TypeFile)

	n := root.FindByPath("Network/tcp.md")
	if n == nil || n.Name != "tcp.md" {
		t.Fatalf("FindByPath(Network/tcp.md) = %v, want tcp.md", n)
	}
}

func TestWalkVisitsAllInOrder(t *testing.T) {
	root := buildSample()
	var visited []string
	root.Walk(func(n *Node) {
		visited = append(visited, n.Path)
	})
	want := []string{"", "Protocols", "Protocols/SSH", "Protocols/SSH/ssh-keys.md", "Protocols/DNS", "README.md"}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("Walk order = %v, want %v", visited, want)
	}
}

func TestAncestorChain(t *testing.T) {
	tests := []struct {
		target string
		want   []string
	}{
		{"A/B/C.md", []string{"A", "A/B", "A/B/C.md"}},
		{"README.md", []string{"README.md"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := AncestorChain(tt.target)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("AncestorChain(%q) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestParentPath(t *testing.T) {
	if got := ParentPath("A/B/C.md"); got != "A/B" {
		t.Errorf("ParentPath = %q, want A/B", got)
	}
	if got := ParentPath("A"); got != "" {
		t.Errorf("ParentPath of top-level = %q, want empty", got)
	}
}

func TestOpenSetToggle(t *testing.T) {
	open := NewOpenSet()

	if open.Contains("Protocols") {
		t.Error("new open set should be empty")
	}
	open.Toggle("Protocols")
	if !open.Contains("Protocols") {
		t.Error("toggle should add a missing path")
	}
	open.Toggle("Protocols")
	if open.Contains("Protocols") {
		t.Error("toggle should remove a present path")
	}

	open.Add("A")
	open.Add("B")
	if open.Len() != 2 {
		t.Errorf("Len = %d, want 2", open.Len())
	}
	open.Clear()
	if open.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", open.Len())
	}
}
