// SPDX-License-Identifier: MIT
// File: bfs.go
// Role: breadth-first walk from one start vertex.
package bfs

import "github.com/katalvlaran/fvs/core"

// BFS runs breadth-first search on g starting from startID and returns the
// visit order with each vertex's depth. Neighbors are expanded in ascending
// ID order, so the result is reproducible.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound.
func BFS(g *core.Graph, startID int) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	res := &BFSResult{
		Order: make([]int, 0, n),
		Depth: make(map[int]int, n),
	}
	res.Depth[startID] = 0
	queue := []int{startID}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, v)
		for _, u := range g.Neighbors(v) {
			if _, seen := res.Depth[u]; seen {
				continue
			}
			res.Depth[u] = res.Depth[v] + 1
			queue = append(queue, u)
		}
	}

	return res, nil
}
