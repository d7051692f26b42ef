package graph

import (
	"github.com/ttpr0/go-transit/catalogue"
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// transit-graph
//******************************************

var _ IGraph = &TransitGraph{}

// Directed graph with two nodes per stop.
//
// Node 2*s is the wait node of stop s, node 2*s+1 its board node. A wait edge
// leads from the wait node to the board node of the same stop, ride edges lead
// from a board node to the wait node of a later stop on the same bus.
// The graph is immutable after building.
type TransitGraph struct {
	stop_count int
	edges      List[Edge]
	topology   _AdjacencyArray
}

func (self *TransitGraph) GetGraphExplorer() IGraphExplorer {
	return &TransitGraphExplorer{
		graph:    self,
		accessor: self.topology.GetAccessor(),
	}
}
func (self *TransitGraph) NodeCount() int {
	return 2 * self.stop_count
}
func (self *TransitGraph) EdgeCount() int {
	return self.edges.Length()
}
func (self *TransitGraph) IsNode(node int32) bool {
	return node >= 0 && int(node) < self.NodeCount()
}
func (self *TransitGraph) GetEdge(edge int32) Edge {
	return self.edges[edge]
}
func (self *TransitGraph) GetNodeDegree(node int32, dir Direction) int {
	return self.topology.GetDegree(node, dir)
}

func (self *TransitGraph) StopCount() int {
	return self.stop_count
}
func (self *TransitGraph) WaitNode(stop catalogue.StopID) int32 {
	return 2 * int32(stop)
}
func (self *TransitGraph) BoardNode(stop catalogue.StopID) int32 {
	return 2*int32(stop) + 1
}
func (self *TransitGraph) MapNodeToStop(node int32) catalogue.StopID {
	return catalogue.StopID(node / 2)
}
func (self *TransitGraph) IsWaitNode(node int32) bool {
	return node%2 == 0
}

//*******************************************
// transit-graph explorer
//*******************************************

type TransitGraphExplorer struct {
	graph    *TransitGraph
	accessor _AdjArrayAccessor
}

func (self *TransitGraphExplorer) ForAdjacentEdges(node int32, dir Direction, typ Adjacency, callback func(EdgeRef)) {
	self.accessor.SetBaseNode(node, dir)
	for self.accessor.Next() {
		kind := self.accessor.GetKind()
		if typ == ADJACENT_WAIT && kind != WAIT_EDGE {
			continue
		}
		if typ == ADJACENT_RIDE && kind != RIDE_EDGE {
			continue
		}
		callback(EdgeRef{
			EdgeID:  self.accessor.GetEdgeID(),
			OtherID: self.accessor.GetOtherID(),
			Kind:    kind,
		})
	}
}
func (self *TransitGraphExplorer) GetEdgeWeight(edge EdgeRef) float64 {
	return self.graph.edges[edge.EdgeID].Weight
}
func (self *TransitGraphExplorer) GetOtherNode(edge EdgeRef, node int32) int32 {
	e := self.graph.edges[edge.EdgeID]
	if node == e.NodeA {
		return e.NodeB
	}
	if node == e.NodeB {
		return e.NodeA
	}
	return -1
}
