package depgraph

import "testing"

func TestAddEdge_CreatesBothEndpointsAndIsIdempotent(t *testing.T) {
	g := New()
	g.AddEdge("/a.ts", "/b.ts")
	g.AddEdge("/a.ts", "/b.ts")

	if !g.HasNode("/a.ts") || !g.HasNode("/b.ts") {
		t.Fatal("expected both endpoints to exist")
	}
	if !g.HasEdge("/a.ts", "/b.ts") {
		t.Fatal("expected edge to exist")
	}
	if got := g.Outgoing("/a.ts"); len(got) != 1 || got[0] != "/b.ts" {
		t.Fatalf("expected idempotent outgoing list, got %v", got)
	}
	if got := g.Incoming("/b.ts"); len(got) != 1 || got[0] != "/a.ts" {
		t.Fatalf("expected idempotent incoming list, got %v", got)
	}
}

func TestBidirectionalConsistency(t *testing.T) {
	g := New()
	g.AddEdge("/a.ts", "/b.ts")
	g.AddEdge("/a.ts", "/c.ts")
	g.AddEdge("/b.ts", "/c.ts")

	for _, e := range g.Edges() {
		if !contains(g.Outgoing(e.From), e.To) {
			t.Errorf("%s missing from %s's outgoing", e.To, e.From)
		}
		if !contains(g.Incoming(e.To), e.From) {
			t.Errorf("%s missing from %s's incoming", e.From, e.To)
		}
	}
}

func TestRemoveNode_ScrubsAdjacency(t *testing.T) {
	g := New()
	g.AddEdge("/a.ts", "/b.ts")
	g.AddEdge("/b.ts", "/c.ts")

	g.RemoveNode("/b.ts")

	if g.HasNode("/b.ts") {
		t.Fatal("expected /b.ts removed")
	}
	if contains(g.Outgoing("/a.ts"), "/b.ts") {
		t.Error("expected /b.ts scrubbed from /a.ts's outgoing")
	}
	if contains(g.Incoming("/c.ts"), "/b.ts") {
		t.Error("expected /b.ts scrubbed from /c.ts's incoming")
	}
}

func TestRemoveEdge_LeavesEndpoints(t *testing.T) {
	g := New()
	g.AddEdge("/a.ts", "/b.ts")
	g.RemoveEdge("/a.ts", "/b.ts")

	if !g.HasNode("/a.ts") || !g.HasNode("/b.ts") {
		t.Fatal("expected endpoints to survive edge removal")
	}
	if g.HasEdge("/a.ts", "/b.ts") {
		t.Fatal("expected edge removed")
	}
}

func TestTransitiveOutgoing(t *testing.T) {
	g := New()
	g.AddEdge("/a.ts", "/b.ts")
	g.AddEdge("/b.ts", "/c.ts")
	g.AddEdge("/c.ts", "/d.ts")

	got := g.TransitiveOutgoing("/a.ts")
	want := map[string]bool{"/b.ts": true, "/c.ts": true, "/d.ts": true}
	if len(got) != len(want) {
		t.Fatalf("expected %d reachable nodes, got %v", len(want), got)
	}
	for _, p := range got {
		if !want[p] {
			t.Errorf("unexpected reachable node %s", p)
		}
	}
}

func TestTransitiveIncoming(t *testing.T) {
	g := New()
	g.AddEdge("/a.ts", "/b.ts")
	g.AddEdge("/b.ts", "/c.ts")

	got := g.TransitiveIncoming("/c.ts")
	if len(got) != 2 {
		t.Fatalf("expected 2 ancestors, got %v", got)
	}
}

func TestTopKByOutgoing(t *testing.T) {
	g := New()
	g.AddEdge("/a.ts", "/x.ts")
	g.AddEdge("/a.ts", "/y.ts")
	g.AddEdge("/b.ts", "/x.ts")
	g.AddNode("/c.ts")

	top := g.TopKByOutgoing(2)
	if len(top) != 2 || top[0].Path != "/a.ts" || top[0].Count != 2 {
		t.Fatalf("unexpected top-k: %+v", top)
	}
}

func TestOrphansLeavesRoots(t *testing.T) {
	g := New()
	g.AddEdge("/leaf.ts", "/root.ts")
	g.AddNode("/orphan.ts")

	orphans := g.Orphans()
	if len(orphans) != 1 || orphans[0] != "/orphan.ts" {
		t.Fatalf("unexpected orphans: %v", orphans)
	}

	leaves := g.Leaves()
	if len(leaves) != 1 || leaves[0] != "/leaf.ts" {
		t.Fatalf("unexpected leaves: %v", leaves)
	}

	roots := g.Roots()
	if len(roots) != 1 || roots[0] != "/root.ts" {
		t.Fatalf("unexpected roots: %v", roots)
	}
}

func TestNodeCountAndEdgeCount(t *testing.T) {
	g := New()
	g.AddEdge("/a.ts", "/b.ts")
	g.AddEdge("/a.ts", "/c.ts")

	if g.NodeCount() != 3 {
		t.Errorf("expected 3 nodes, got %d", g.NodeCount())
	}
	if g.EdgeCount() != 2 {
		t.Errorf("expected 2 edges, got %d", g.EdgeCount())
	}
}
