package connector

import (
	"reflect"
	"testing"
)

func TestGraphTopologicalOrder(t *testing.T) {
	g := NewGraph()
	if err := g.Connect("heating", "cooling"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Connect("cooling", "mixing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := g.TopologicalOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"heating", "cooling", "mixing"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("got order %v, want %v", order, want)
	}
}

func TestGraphConnectRejectsCycle(t *testing.T) {
	g := NewGraph()
	if err := g.Connect("a", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Connect("b", "c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Connect("c", "a"); err == nil {
		t.Fatal("expected error connecting c -> a to close a cycle")
	}
}

func TestGraphAddNodeIsIdempotent(t *testing.T) {
	g := NewGraph()
	g.AddNode("solo")
	g.AddNode("solo")
	order, err := g.TopologicalOrder()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 1 {
		t.Fatalf("expected a single node, got %v", order)
	}
}
