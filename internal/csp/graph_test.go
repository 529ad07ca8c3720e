package csp

import (
	"testing"

	"github.com/Rebecca-Tillapaugh/CSCI-331-06-Group-2/internal/grid"
)

func TestNeighborCountsClassic(t *testing.T) {
	g := NewConstraintGraph(grid.Standard9())

	// Every cell of a 9x9 grid has 8 row + 8 column + 4 box-only peers.
	for id := 0; id < 81; id++ {
		if got := len(g.Neighbors(id)); got != 20 {
			t.Fatalf("cell %d has %d neighbors, want 20", id, got)
		}
	}
}

func TestNeighborCountsDiagonal(t *testing.T) {
	shape := grid.Diagonal9()
	g := NewConstraintGraph(shape)

	cases := []struct {
		row, col, want int
	}{
		// Corner on the main diagonal: 8 of its diagonal peers are new
		// except (1,1) and (2,2), which already share its box.
		{0, 0, 26},
		// Center cell sits on both diagonals.
		{4, 4, 32},
		// Off-diagonal cells keep the plain neighbor count.
		{0, 1, 20},
		{5, 7, 20},
	}
	for _, tc := range cases {
		id := shape.MakePos(tc.row, tc.col)
		if got := len(g.Neighbors(id)); got != tc.want {
			t.Errorf("(%d,%d) has %d neighbors, want %d", tc.row, tc.col, got, tc.want)
		}
	}
}

func TestNeighborsSortedWithoutSelf(t *testing.T) {
	for _, shape := range []*grid.Shape{grid.Standard9(), grid.Diagonal9()} {
		g := NewConstraintGraph(shape)
		for id := range shape.Cells() {
			prev := -1
			for _, nb := range g.Neighbors(id) {
				if nb == id {
					t.Fatalf("%v: cell %d lists itself", shape, id)
				}
				if nb <= prev {
					t.Fatalf("%v: neighbors of %d not strictly ascending: %v", shape, id, g.Neighbors(id))
				}
				prev = nb
			}
		}
	}
}

func TestGraphConstructionIdempotent(t *testing.T) {
	for _, shape := range []*grid.Shape{grid.Standard9(), grid.Diagonal9()} {
		a := NewConstraintGraph(shape)
		b := NewConstraintGraph(shape)
		for id := range shape.Cells() {
			na, nb := a.Neighbors(id), b.Neighbors(id)
			if len(na) != len(nb) {
				t.Fatalf("%v: cell %d neighbor counts differ: %d vs %d", shape, id, len(na), len(nb))
			}
			for i := range na {
				if na[i] != nb[i] {
					t.Fatalf("%v: cell %d neighbor sets differ: %v vs %v", shape, id, na, nb)
				}
			}
		}
	}
}

func TestNeighborsSymmetric(t *testing.T) {
	shape := grid.Diagonal9()
	g := NewConstraintGraph(shape)

	for id := range shape.Cells() {
		for _, nb := range g.Neighbors(id) {
			back := false
			for _, p := range g.Neighbors(nb) {
				if p == id {
					back = true
					break
				}
			}
			if !back {
				t.Fatalf("edge %d->%d has no reverse edge", id, nb)
			}
		}
	}
}

func TestGraphSharedAcrossBranches(t *testing.T) {
	root, err := NewConfiguration(grid.New(nil), nil)
	if err != nil {
		t.Fatal(err)
	}
	child := root.Branch(0, 1)
	grandchild := child.Branch(1, 2)

	if child.Graph() != root.Graph() || grandchild.Graph() != root.Graph() {
		t.Error("branching should share the constraint graph pointer")
	}
}
