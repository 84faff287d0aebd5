package layout

import (
	"math"
	"reflect"
	"testing"

	"pgregory.net/rapid"

	"github.com/fttower/orbit/internal/model"
)

func portfolioTree() *model.Node {
	root := model.NewRoot("portfolio")
	protocols := root.AddChild("Protocols", model.TypeFolder)
	ssh := protocols.AddChild("SSH", model.TypeFolder)
	ssh.AddChild("ssh-keys.md", model.TypeFile)
	ssh.AddChild("ssh-tunnel.md", model.TypeFile)
	protocols.AddChild("DNS", model.TypeFolder)
	root.AddChild("Tools", model.TypeFolder)
	return root
}

func TestComputeCollapsedShowsRootChildren(t *testing.T) {
	root := portfolioTree()
	open := model.NewOpenSet()
	res := Compute(root, open, DefaultOptions())

	// The root is always expanded, so its direct children are placed.
	want := []string{"", "Protocols", "Tools"}
	if !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v, want %v", res.Order, want)
	}

	// A closed folder hides its subtree entirely.
	if res.Entry("Protocols/SSH") != nil {
		t.Error("children of a closed folder should not be placed")
	}
}

func TestComputePositions(t *testing.T) {
	root := portfolioTree()
	open := model.NewOpenSet()
	open.Add("Protocols")
	opts := DefaultOptions()
	res := Compute(root, open, opts)

	rootEntry := res.Entry("")
	if rootEntry == nil {
		t.Fatal("root not placed")
	}
	if rootEntry.X != res.CanvasW/2 {
		t.Errorf("root X = %v, want canvas center %v", rootEntry.X, res.CanvasW/2)
	}
	if rootEntry.Y != opts.Margin {
		t.Errorf("root Y = %v, want margin %v", rootEntry.Y, opts.Margin)
	}

	// Depth maps to Y linearly.
	ssh := res.Entry("Protocols/SSH")
	if ssh == nil {
		t.Fatal("Protocols/SSH not placed")
	}
	wantY := opts.Margin + 2*opts.LevelHeight
	if ssh.Y != wantY {
		t.Errorf("SSH Y = %v, want %v", ssh.Y, wantY)
	}
	if ssh.Depth != 2 {
		t.Errorf("SSH depth = %d, want 2", ssh.Depth)
	}

	// Siblings are placed left to right in child order.
	dns := res.Entry("Protocols/DNS")
	if dns == nil {
		t.Fatal("Protocols/DNS not placed")
	}
	if ssh.X >= dns.X {
		t.Errorf("sibling order broken: SSH X %v >= DNS X %v", ssh.X, dns.X)
	}
}

func TestComputeSingleChildCenteredUnderParent(t *testing.T) {
	root := model.NewRoot("r")
	a := root.AddChild("A", model.TypeFolder)
	a.AddChild("only.md", model.TypeFile)

	open := model.NewOpenSet()
	open.Add("A")
	res := Compute(root, open, DefaultOptions())

	parent := res.Entry("A")
	child := res.Entry("A/only.md")
	if parent == nil || child == nil {
		t.Fatal("nodes not placed")
	}
	if child.X != parent.X {
		t.Errorf("single child X = %v, want parent X %v", child.X, parent.X)
	}
}

func TestComputeParentSpansChildren(t *testing.T) {
	root := model.NewRoot("r")
	a := root.AddChild("A", model.TypeFolder)
	for _, name := range []string{"one.md", "two.md", "three.md"} {
		a.AddChild(name, model.TypeFile)
	}
	root.AddChild("B", model.TypeFolder)

	open := model.NewOpenSet()
	open.Add("A")
	opts := DefaultOptions()
	res := Compute(root, open, opts)

	// A's three children occupy 3*MinSpacing, and A is centered over them.
	first := res.Entry("A/one.md")
	last := res.Entry("A/three.md")
	parent := res.Entry("A")
	if last.X-first.X != 2*opts.MinSpacing {
		t.Errorf("children span = %v, want %v", last.X-first.X, 2*opts.MinSpacing)
	}
	if parent.X != (first.X+last.X)/2 {
		t.Errorf("parent X = %v, want center of children %v", parent.X, (first.X+last.X)/2)
	}
}

func TestComputeEdgesConnectParents(t *testing.T) {
	root := portfolioTree()
	open := model.NewOpenSet()
	open.Add("Protocols")
	open.Add("Protocols/SSH")
	res := Compute(root, open, DefaultOptions())

	// One edge per non-root visible node.
	if len(res.Edges) != len(res.Order)-1 {
		t.Fatalf("edges = %d, want %d", len(res.Edges), len(res.Order)-1)
	}
	for _, e := range res.Edges {
		from := res.Entry(e.FromPath)
		to := res.Entry(e.ToPath)
		if from == nil || to == nil {
			t.Fatalf("edge %v references missing entry", e)
		}
		if e.X1 != from.X || e.Y1 != from.Y || e.X2 != to.X || e.Y2 != to.Y {
			t.Errorf("edge %s->%s coordinates do not match entries", e.FromPath, e.ToPath)
		}
		if to.ParentPath != e.FromPath {
			t.Errorf("entry %s parent = %q, want %q", e.ToPath, to.ParentPath, e.FromPath)
		}
	}
}

func TestComputeCanvasFloors(t *testing.T) {
	root := model.NewRoot("r")
	root.AddChild("a.md", model.TypeFile)
	opts := DefaultOptions()
	res := Compute(root, model.NewOpenSet(), opts)

	if res.CanvasW < opts.MinCanvasW {
		t.Errorf("CanvasW = %v, below floor %v", res.CanvasW, opts.MinCanvasW)
	}
	if res.CanvasH < opts.MinCanvasH {
		t.Errorf("CanvasH = %v, below floor %v", res.CanvasH, opts.MinCanvasH)
	}
}

func TestComputeNilRoot(t *testing.T) {
	res := Compute(nil, model.NewOpenSet(), DefaultOptions())
	if len(res.Entries) != 0 {
		t.Error("nil root should produce an empty result")
	}
}

// genTree builds a random tree with deterministic names so rapid can
// shrink failures.
func genTree(t *rapid.T) (*model.Node, *model.OpenSet) {
	root := model.NewRoot("r")
	open := model.NewOpenSet()
	nodes := []*model.Node{root}
	count := rapid.IntRange(1, 40).Draw(t, "count")
	for i := 0; i < count; i++ {
		parent := nodes[rapid.IntRange(0, len(nodes)-1).Draw(t, "parent")]
		if !parent.IsFolder() {
			continue
		}
		if rapid.Bool().Draw(t, "folder") {
			child := parent.AddChild(childName(parent, i, "d"), model.TypeFolder)
			nodes = append(nodes, child)
			if rapid.Bool().Draw(t, "open") {
				open.Add(child.Path)
			}
		} else {
			nodes = append(nodes, parent.AddChild(childName(parent, i, "f"), model.TypeFile))
		}
	}
	return root, open
}

func childName(parent *model.Node, i int, kind string) string {
	return kind + string(rune('a'+i%26)) + string(rune('0'+i/26))
}

func TestComputeDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root, open := genTree(t)
		opts := DefaultOptions()
		first := Compute(root, open, opts)
		second := Compute(root, open, opts)

		if !reflect.DeepEqual(first.Order, second.Order) {
			t.Fatalf("Order differs between runs: %v vs %v", first.Order, second.Order)
		}
		for path, e := range first.Entries {
			e2 := second.Entries[path]
			if e2 == nil || e.X != e2.X || e.Y != e2.Y {
				t.Fatalf("entry %q differs between runs", path)
			}
		}
	})
}

func TestComputeSiblingsNeverOverlap(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		root, open := genTree(t)
		opts := DefaultOptions()
		res := Compute(root, open, opts)

		// Group visible nodes by parent and check horizontal separation.
		byParent := map[string][]*Entry{}
		for _, path := range res.Order {
			e := res.Entries[path]
			if path != "" {
				byParent[e.ParentPath] = append(byParent[e.ParentPath], e)
			}
		}
		for parent, siblings := range byParent {
			for i := 1; i < len(siblings); i++ {
				gap := siblings[i].X - siblings[i-1].X
				if gap < opts.MinSpacing-1e-9 {
					t.Fatalf("siblings under %q too close: %v < %v", parent, gap, opts.MinSpacing)
				}
			}
		}
	})
}

func TestComputeToggleRoundTrip(t *testing.T) {
	root := portfolioTree()
	open := model.NewOpenSet()
	open.Add("Protocols")
	opts := DefaultOptions()

	before := Compute(root, open, opts)
	open.Toggle("Protocols/SSH")
	open.Toggle("Protocols/SSH")
	after := Compute(root, open, opts)

	if !reflect.DeepEqual(before.Order, after.Order) {
		t.Errorf("toggle round trip changed order: %v vs %v", before.Order, after.Order)
	}
	for path, e := range before.Entries {
		e2 := after.Entries[path]
		if e2 == nil || math.Abs(e.X-e2.X) > 1e-9 || math.Abs(e.Y-e2.Y) > 1e-9 {
			t.Errorf("toggle round trip moved %q", path)
		}
	}
}
