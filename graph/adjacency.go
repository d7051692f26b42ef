package graph

import (
	. "github.com/ttpr0/go-transit/util"
)

//*******************************************
// adjacency array
//*******************************************

type _AdjEntry struct {
	edge_id  int32
	other_id int32
	kind     EdgeKind
}

// Static forward and backward adjacency in compressed-row form.
//
// Entries of a node keep the order in which their edges were added.
type _AdjacencyArray struct {
	fwd_offsets Array[int32]
	fwd_entries Array[_AdjEntry]
	bwd_offsets Array[int32]
	bwd_entries Array[_AdjEntry]
}

func _BuildTopology(node_count int, edges List[Edge]) _AdjacencyArray {
	fwd_offsets := NewArray[int32](node_count + 1)
	bwd_offsets := NewArray[int32](node_count + 1)
	for _, edge := range edges {
		fwd_offsets[edge.NodeA+1] += 1
		bwd_offsets[edge.NodeB+1] += 1
	}
	for i := 1; i <= node_count; i++ {
		fwd_offsets[i] += fwd_offsets[i-1]
		bwd_offsets[i] += bwd_offsets[i-1]
	}

	fwd_entries := NewArray[_AdjEntry](edges.Length())
	bwd_entries := NewArray[_AdjEntry](edges.Length())
	fwd_fill := NewArray[int32](node_count)
	bwd_fill := NewArray[int32](node_count)
	for id, edge := range edges {
		kind := edge.Kind()
		pos := fwd_offsets[edge.NodeA] + fwd_fill[edge.NodeA]
		fwd_entries[pos] = _AdjEntry{edge_id: int32(id), other_id: edge.NodeB, kind: kind}
		fwd_fill[edge.NodeA] += 1
		pos = bwd_offsets[edge.NodeB] + bwd_fill[edge.NodeB]
		bwd_entries[pos] = _AdjEntry{edge_id: int32(id), other_id: edge.NodeA, kind: kind}
		bwd_fill[edge.NodeB] += 1
	}

	return _AdjacencyArray{
		fwd_offsets: fwd_offsets,
		fwd_entries: fwd_entries,
		bwd_offsets: bwd_offsets,
		bwd_entries: bwd_entries,
	}
}

func (self *_AdjacencyArray) GetDegree(node int32, dir Direction) int {
	if dir == FORWARD {
		return int(self.fwd_offsets[node+1] - self.fwd_offsets[node])
	}
	return int(self.bwd_offsets[node+1] - self.bwd_offsets[node])
}

func (self *_AdjacencyArray) GetAccessor() _AdjArrayAccessor {
	return _AdjArrayAccessor{
		topology: self,
	}
}

//*******************************************
// adjacency accessor
//*******************************************

// Cursor over the adjacency of one node, not safe for concurrent use.
type _AdjArrayAccessor struct {
	topology *_AdjacencyArray
	entries  Array[_AdjEntry]
	pos      int32
	end      int32
	curr     _AdjEntry
}

func (self *_AdjArrayAccessor) SetBaseNode(node int32, dir Direction) {
	if dir == FORWARD {
		self.entries = self.topology.fwd_entries
		self.pos = self.topology.fwd_offsets[node]
		self.end = self.topology.fwd_offsets[node+1]
	} else {
		self.entries = self.topology.bwd_entries
		self.pos = self.topology.bwd_offsets[node]
		self.end = self.topology.bwd_offsets[node+1]
	}
}
func (self *_AdjArrayAccessor) Next() bool {
	if self.pos >= self.end {
		return false
	}
	self.curr = self.entries[self.pos]
	self.pos += 1
	return true
}
func (self *_AdjArrayAccessor) GetEdgeID() int32 {
	return self.curr.edge_id
}
func (self *_AdjArrayAccessor) GetOtherID() int32 {
	return self.curr.other_id
}
func (self *_AdjArrayAccessor) GetKind() EdgeKind {
	return self.curr.kind
}
