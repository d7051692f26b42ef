package routing

import (
	"github.com/ttpr0/go-transit/graph"
)

type IShortestPath interface {
	CalcShortestPath() bool
	GetShortestPath() Path
}

// Result of a shortest-path query: total weight and the traversed edge ids in
// travel order.
type Path struct {
	Weight float64
	Edges  []int32
}

func NewPath(weight float64, edges []int32) Path {
	return Path{
		Weight: weight,
		Edges:  edges,
	}
}

// Walks the predecessor edges back from end to start.
func _TracePath(g graph.IGraph, start, end int32, prev_edge func(int32) int32) []int32 {
	path := make([]int32, 0, 10)
	curr_id := end
	for curr_id != start {
		edge_id := prev_edge(curr_id)
		path = append(path, edge_id)
		curr_id = g.GetEdge(edge_id).NodeA
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
