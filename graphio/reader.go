// SPDX-License-Identifier: MIT
// Package graphio reads edge-list graphs and writes solutions and reports.
//
// The edge-list format has one edge per line, two whitespace-separated
// vertex names. Blank lines and lines starting with '#' are skipped. Names
// are arbitrary tokens mapped to dense IDs 0, 1, 2, ... in order of first
// appearance. Repeating a line adds a parallel edge.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/fvs/core"
)

// ErrMalformedLine: a non-comment line without exactly two tokens.
var ErrMalformedLine = errors.New("graphio: malformed line")

// Input is a parsed edge list.
type Input struct {
	// Graph holds every vertex except the committed ones.
	Graph *core.Graph
	// Committed lists vertices with a self-loop in the input, in order of
	// first loop. They belong to every FVS and are removed from Graph.
	Committed []int
	// Names maps an ID to its input token.
	Names []string
	// Edges counts every edge line read, self-loops and edges at committed
	// vertices included.
	Edges int
}

// Name returns the input token of id, or its decimal form when unknown.
func (in *Input) Name(id int) string {
	if id >= 0 && id < len(in.Names) {
		return in.Names[id]
	}

	return fmt.Sprint(id)
}

// NamesOf maps ids to input tokens.
func (in *Input) NamesOf(ids []int) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = in.Name(id)
	}

	return out
}

// Read parses an edge list from r.
func Read(r io.Reader) (*Input, error) {
	in := &Input{Graph: core.NewGraph()}
	ids := make(map[string]int)
	looped := make(map[int]bool)
	id := func(name string) int {
		v, ok := ids[name]
		if !ok {
			v = len(in.Names)
			ids[name] = v
			in.Names = append(in.Names, name)
			_ = in.Graph.AddVertex(v) // fresh non-negative ID
		}

		return v
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("graphio: Read: line %d: %q: %w", lineNo, line, ErrMalformedLine)
		}
		u, v := id(fields[0]), id(fields[1])
		in.Edges++
		if u == v {
			if !looped[u] {
				looped[u] = true
				in.Committed = append(in.Committed, u)
			}

			continue
		}
		if err := in.Graph.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("graphio: Read: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("graphio: Read: %w", err)
	}

	for _, v := range in.Committed {
		_ = in.Graph.RemoveVertex(v) // added when first seen
	}

	return in, nil
}
