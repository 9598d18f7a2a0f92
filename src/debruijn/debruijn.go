// Package debruijn builds the De Bruijn graph of a set of reads and writes it in DOT or GFA format.
package debruijn

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/will-rowe/anise/src/version"
	"github.com/will-rowe/gfa"
)

// Edge links two (k-1)-mers that overlap within a k-mer
type Edge struct {
	From string
	To   string
}

// Graph is a De Bruijn graph, nodes are (k-1)-mers and edges are k-mers
type Graph struct {
	K     int
	nodes map[string]struct{}
	edges map[Edge]struct{}
}

// NewGraph is the Graph constructor
func NewGraph(k int) (*Graph, error) {
	if k < 2 {
		return nil, errors.Errorf("k-mer size must be >= 2 to build a De Bruijn graph, got %d", k)
	}
	return &Graph{
		K:     k,
		nodes: make(map[string]struct{}),
		edges: make(map[Edge]struct{}),
	}, nil
}

// AddRead is a method to add every k-mer of a read to the graph, reads shorter than k add nothing
func (Graph *Graph) AddRead(read []byte) {
	for i := 0; i+Graph.K <= len(read); i++ {
		kmer := string(read[i : i+Graph.K])
		edge := Edge{From: kmer[:Graph.K-1], To: kmer[1:]}
		Graph.nodes[edge.From] = struct{}{}
		Graph.nodes[edge.To] = struct{}{}
		Graph.edges[edge] = struct{}{}
	}
}

// Nodes returns the graph nodes in sorted order
func (Graph *Graph) Nodes() []string {
	nodes := make([]string, 0, len(Graph.nodes))
	for node := range Graph.nodes {
		nodes = append(nodes, node)
	}
	sort.Strings(nodes)
	return nodes
}

// Edges returns the graph edges sorted by source and then destination
func (Graph *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(Graph.edges))
	for edge := range Graph.edges {
		edges = append(edges, edge)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// WriteDOT is a method to write the graph in Graphviz DOT format
func (Graph *Graph) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph debruijn {")
	for _, edge := range Graph.Edges() {
		fmt.Fprintf(bw, "    %q -> %q;\n", edge.From, edge.To)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// GFA is a method to convert the graph to a GFA instance
// segments are named by their position in the sorted node list and links carry the (k-2) base overlap
func (Graph *Graph) GFA() (*gfa.GFA, error) {
	newGFA := gfa.NewGFA()
	if err := newGFA.AddVersion(1); err != nil {
		return nil, err
	}
	newGFA.AddComment([]byte(fmt.Sprintf("De Bruijn graph created by anise (version %v), k=%d", version.GetVersion(), Graph.K)))
	segIDs := make(map[string][]byte, len(Graph.nodes))
	for i, node := range Graph.Nodes() {
		segID := []byte(strconv.Itoa(i + 1))
		segIDs[node] = segID
		seg, err := gfa.NewSegment(segID, []byte(node))
		if err != nil {
			return nil, err
		}
		if err := seg.Add(newGFA); err != nil {
			return nil, err
		}
	}
	overlap := []byte(strconv.Itoa(Graph.K-2) + "M")
	for _, edge := range Graph.Edges() {
		link, err := gfa.NewLink(segIDs[edge.From], []byte("+"), segIDs[edge.To], []byte("+"), overlap)
		if err != nil {
			return nil, err
		}
		if err := link.Add(newGFA); err != nil {
			return nil, err
		}
	}
	return newGFA, nil
}

// WriteGFA is a method to write the graph in GFA format
func (Graph *Graph) WriteGFA(w io.Writer) error {
	newGFA, err := Graph.GFA()
	if err != nil {
		return errors.Wrap(err, "could not convert De Bruijn graph to GFA")
	}
	writer, err := gfa.NewWriter(w, newGFA)
	if err != nil {
		return errors.Wrap(err, "could not create GFA writer")
	}
	return newGFA.WriteGFAContent(writer)
}
