package routing

import (
	"math"

	"github.com/ttpr0/go-transit/graph"
	. "github.com/ttpr0/go-transit/util"
	"golang.org/x/exp/slog"
)

type flag_td struct {
	path_length float64
	prev_edge   int32
	visited     bool
}

// Single-source single-target dijkstra.
//
// Holds its own search state, so any number of instances can run against the
// same graph concurrently.
type TransitDijkstra struct {
	heap     PriorityQueue[int32, float64]
	start_id int32
	end_id   int32
	graph    graph.IGraph
	flags    []flag_td
}

func NewTransitDijkstra(g graph.IGraph, start, end int32) *TransitDijkstra {
	d := TransitDijkstra{graph: g, start_id: start, end_id: end}

	flags := make([]flag_td, g.NodeCount())
	for i := 0; i < len(flags); i++ {
		flags[i].path_length = math.MaxFloat64
		flags[i].prev_edge = -1
	}
	flags[start].path_length = 0
	d.flags = flags

	heap := NewPriorityQueue[int32, float64](100)
	heap.Enqueue(d.start_id, 0)
	d.heap = heap

	return &d
}

func (self *TransitDijkstra) CalcShortestPath() bool {
	explorer := self.graph.GetGraphExplorer()

	for {
		curr_id, ok := self.heap.Dequeue()
		if !ok {
			return false
		}
		if curr_id == self.end_id {
			return true
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
				self.heap.Enqueue(other_id, new_length)
			}
			self.flags[other_id] = other_flag
		})
		self.flags[curr_id] = curr_flag
	}
}

func (self *TransitDijkstra) GetShortestPath() Path {
	length := self.flags[self.end_id].path_length
	path := _TracePath(self.graph, self.start_id, self.end_id, func(node int32) int32 {
		return self.flags[node].prev_edge
	})
	slog.Debug("shortest path found", "length", length, "edges", len(path))
	return NewPath(length, path)
}
