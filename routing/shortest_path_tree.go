package routing

import (
	"math"

	"github.com/ttpr0/go-transit/graph"
	. "github.com/ttpr0/go-transit/util"
)

type flag_spt struct {
	path_length float64
	prev_edge   int32
	visited     bool
}

// One-to-all dijkstra from a single source.
//
// Relaxes edges in the same order as TransitDijkstra, so the path it yields
// to any target equals the path of a single-target query.
type ShortestPathTree struct {
	graph graph.IGraph
	start int32
	flags []flag_spt
}

func NewShortestPathTree(g graph.IGraph, start int32) *ShortestPathTree {
	flags := make([]flag_spt, g.NodeCount())
	for i := 0; i < len(flags); i++ {
		flags[i].path_length = math.MaxFloat64
		flags[i].prev_edge = -1
	}
	return &ShortestPathTree{
		graph: g,
		start: start,
		flags: flags,
	}
}

func (self *ShortestPathTree) CalcShortestPathTree() {
	heap := NewPriorityQueue[int32, float64](100)
	heap.Enqueue(self.start, 0)
	self.flags[self.start].path_length = 0
	explorer := self.graph.GetGraphExplorer()

	for {
		curr_id, ok := heap.Dequeue()
		if !ok {
			return
		}
		curr_flag := self.flags[curr_id]
		if curr_flag.visited {
			continue
		}
		curr_flag.visited = true
		explorer.ForAdjacentEdges(curr_id, graph.FORWARD, graph.ADJACENT_ALL, func(ref graph.EdgeRef) {
			other_id := ref.OtherID
			other_flag := self.flags[other_id]
			if other_flag.visited {
				return
			}
			new_length := curr_flag.path_length + explorer.GetEdgeWeight(ref)
			if other_flag.path_length > new_length {
				other_flag.prev_edge = ref.EdgeID
				other_flag.path_length = new_length
				heap.Enqueue(other_id, new_length)
			}
			self.flags[other_id] = other_flag
		})
		self.flags[curr_id] = curr_flag
	}
}

func (self *ShortestPathTree) IsReached(node int32) bool {
	return self.flags[node].visited
}

func (self *ShortestPathTree) GetDistance(node int32) float64 {
	return self.flags[node].path_length
}

func (self *ShortestPathTree) GetShortestPath(end int32) Optional[Path] {
	if !self.IsReached(end) {
		return None[Path]()
	}
	path := _TracePath(self.graph, self.start, end, func(node int32) int32 {
		return self.flags[node].prev_edge
	})
	return Some(NewPath(self.flags[end].path_length, path))
}
