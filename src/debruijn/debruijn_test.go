package debruijn

import (
	"bytes"
	"strings"
	"testing"
)

// reads that form a small cyclic graph for k=3
var testReads = []string{
	"ATTCA", "ATTGA", "CATTG", "CTTAT", "GATTG", "TATTT", "TCATT",
	"TCTTA", "TGATT", "TTATT", "TTCAT", "TTCTT", "TTGAT",
}

func buildTestGraph(t *testing.T) *Graph {
	g, err := NewGraph(3)
	if err != nil {
		t.Fatal(err)
	}
	for _, read := range testReads {
		g.AddRead([]byte(read))
	}
	return g
}

func TestNewGraph(t *testing.T) {
	if _, err := NewGraph(1); err == nil {
		t.Fatal("k < 2 should fault")
	}
}

func TestBuild(t *testing.T) {
	g := buildTestGraph(t)
	nodes := g.Nodes()
	if strings.Join(nodes, ",") != "AT,CA,CT,GA,TA,TC,TG,TT" {
		t.Fatalf("unexpected nodes: %v", nodes)
	}
	edges := g.Edges()
	if len(edges) != 12 {
		t.Fatalf("expected 12 edges, got %d", len(edges))
	}
	if edges[0] != (Edge{From: "AT", To: "TT"}) {
		t.Fatalf("unexpected first edge: %+v", edges[0])
	}

	// short reads add nothing
	g.AddRead([]byte("AC"))
	if len(g.Nodes()) != 8 {
		t.Fatal("a read shorter than k should not add nodes")
	}
}

func TestWriteDOT(t *testing.T) {
	g, err := NewGraph(3)
	if err != nil {
		t.Fatal(err)
	}
	g.AddRead([]byte("ACGT"))
	var buf bytes.Buffer
	if err := g.WriteDOT(&buf); err != nil {
		t.Fatal(err)
	}
	expected := "digraph debruijn {\n    \"AC\" -> \"CG\";\n    \"CG\" -> \"GT\";\n}\n"
	if buf.String() != expected {
		t.Fatalf("unexpected DOT output:\n%v", buf.String())
	}
}

func TestGFA(t *testing.T) {
	g := buildTestGraph(t)
	newGFA, err := g.GFA()
	if err != nil {
		t.Fatal(err)
	}
	if newGFA == nil {
		t.Fatal("no GFA instance created")
	}
	var buf bytes.Buffer
	if err := g.WriteGFA(&buf); err != nil {
		t.Fatal(err)
	}
	segs, links := 0, 0
	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "S\t"):
			segs++
		case strings.HasPrefix(line, "L\t"):
			links++
			if !strings.Contains(line, "\t1M") {
				t.Fatalf("link should have a 1M overlap: %v", line)
			}
		}
	}
	if segs != 8 || links != 12 {
		t.Fatalf("expected 8 segments and 12 links, got %d and %d", segs, links)
	}
}
