package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-earth/common"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestNodeAddMovesChild(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	c := NewGroup("c")

	a.Add(c)
	b.Add(c)

	if len(a.Children()) != 0 {
		t.Fatalf("a still has %d children", len(a.Children()))
	}
	if len(b.Children()) != 1 || c.Parent() != b {
		t.Fatal("c not attached to b")
	}
}

func TestNodeDefaults(t *testing.T) {
	n := NewGroup("n")
	if n.Scale() != [3]float32{1, 1, 1} {
		t.Errorf("scale = %v", n.Scale())
	}
	if !n.Visible() {
		t.Error("new node hidden")
	}
	if n.Model() != nil || n.Material() != nil {
		t.Error("group carries a mesh")
	}
	if n.BindGroupProvider().Label() != "n Object" {
		t.Errorf("provider label = %q", n.BindGroupProvider().Label())
	}
}

func TestRotateYAccumulates(t *testing.T) {
	n := NewGroup("n", WithRotation(0.1, 0, 0.3))
	for range 10 {
		n.RotateY(0.002)
	}
	r := n.Rotation()
	if !approx(r[0], 0.1) || !approx(r[1], 0.02) || !approx(r[2], 0.3) {
		t.Errorf("rotation = %v", r)
	}
}

func TestWorldMatrixComposesParent(t *testing.T) {
	child := NewGroup("child", WithPosition(1, 0, 0))
	parent := NewGroup("parent", WithPosition(0, 2, 0), WithScalar(2), WithChildren(child))

	world := child.WorldMatrix()
	x, y, z := common.TransformPoint(world[:], 0, 0, 0)
	if !approx(x, 2) || !approx(y, 2) || !approx(z, 0) {
		t.Errorf("origin maps to (%v, %v, %v), want (2, 2, 0)", x, y, z)
	}
	if child.Parent() != parent {
		t.Error("WithChildren did not set parent")
	}
}

func TestTiltRotatesChildAxis(t *testing.T) {
	tilt := float32(common.Radians(-23.4))
	earth := NewGroup("earth")
	NewGroup("tilt", WithRotation(0, 0, tilt), WithChildren(earth))

	world := earth.WorldMatrix()
	x, y, _ := common.TransformDirection(world[:], 0, 1, 0)
	want := float32(math.Cos(float64(tilt)))
	if !approx(y, want) {
		t.Errorf("spin axis y = %v, want %v", y, want)
	}
	if x <= 0 {
		t.Errorf("a negative Z tilt should lean +Y toward +X, got x = %v", x)
	}
}

func TestSetScalar(t *testing.T) {
	n := NewGroup("n")
	n.SetScalar(1.003)
	if n.Scale() != [3]float32{1.003, 1.003, 1.003} {
		t.Errorf("scale = %v", n.Scale())
	}
}

type foreignNode struct{ Node }

func TestNodeAddRejectsCycles(t *testing.T) {
	root := NewGroup("root")
	mid := NewGroup("mid")
	leaf := NewGroup("leaf")
	if err := root.Add(mid); err != nil {
		t.Fatal(err)
	}
	if err := mid.Add(leaf); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		parent Node
		child  Node
	}{
		{"self", leaf, leaf},
		{"parent", leaf, mid},
		{"grandparent", leaf, root},
	}
	for _, tt := range tests {
		if err := tt.parent.Add(tt.child); !errors.Is(err, ErrCycle) {
			t.Errorf("%s: err = %v, want ErrCycle", tt.name, err)
		}
	}
	if leaf.Parent() != mid || mid.Parent() != root || root.Parent() != nil {
		t.Fatal("rejected Add changed the graph")
	}
	leaf.WorldMatrix()
}

func TestNodeAddRejectsForeignNodes(t *testing.T) {
	a := NewGroup("a")
	b := NewGroup("b")
	err := a.Add(b, foreignNode{})
	if !errors.Is(err, ErrForeignNode) {
		t.Fatalf("err = %v, want ErrForeignNode", err)
	}
	if len(a.Children()) != 0 || b.Parent() != nil {
		t.Fatal("a failed Add attached some children")
	}
	if err := a.Add(nil); !errors.Is(err, ErrForeignNode) {
		t.Fatalf("nil child err = %v, want ErrForeignNode", err)
	}
}

func TestWithChildrenSkipsInvalid(t *testing.T) {
	c := NewGroup("c")
	p := NewGroup("p", WithChildren(c, foreignNode{}))
	if len(p.Children()) != 1 || c.Parent() != p {
		t.Fatalf("children = %d, want only c", len(p.Children()))
	}
}
