package routing

import (
	"sync"

	"github.com/ttpr0/go-transit/graph"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// shortest-path solver
//*******************************************

// Answers repeated shortest-path queries against one immutable graph.
//
// Without tree caching every query runs a fresh TransitDijkstra. With caching
// the first query from a source computes its full shortest-path tree, later
// queries from that source only trace the tree. Both modes give identical
// answers and are safe for concurrent use.
type Solver struct {
	graph       graph.IGraph
	cache_trees bool
	mu          sync.RWMutex
	trees       Dict[int32, *ShortestPathTree]
}

func NewSolver(g graph.IGraph, cache_trees bool) *Solver {
	return &Solver{
		graph:       g,
		cache_trees: cache_trees,
		trees:       NewDict[int32, *ShortestPathTree](10),
	}
}

// Returns the minimum-weight path from one node to another, None if either
// node is invalid or the target is unreachable.
func (self *Solver) BuildRoute(from, to int32) Optional[Path] {
	if !self.graph.IsNode(from) || !self.graph.IsNode(to) {
		return None[Path]()
	}
	if self.cache_trees {
		return self._GetTree(from).GetShortestPath(to)
	}
	alg := NewTransitDijkstra(self.graph, from, to)
	if !alg.CalcShortestPath() {
		return None[Path]()
	}
	return Some(alg.GetShortestPath())
}

func (self *Solver) CachedTreeCount() int {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self.trees.Length()
}

func (self *Solver) _GetTree(from int32) *ShortestPathTree {
	self.mu.RLock()
	tree, ok := self.trees[from]
	self.mu.RUnlock()
	if ok {
		return tree
	}

	tree = NewShortestPathTree(self.graph, from)
	tree.CalcShortestPathTree()

	self.mu.Lock()
	defer self.mu.Unlock()
	if cached, ok := self.trees[from]; ok {
		return cached
	}
	self.trees[from] = tree
	return tree
}
