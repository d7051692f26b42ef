package util

import (
	"golang.org/x/exp/constraints"
)

//*******************************************
// priority queue (binary min-heap)
//*******************************************

type pq_item[T any, P constraints.Ordered] struct {
	value    T
	priority P
}

// Min-heap keyed by priority.
//
// Items with equal priority are dequeued in a fixed order for a fixed
// sequence of operations, so searches built on top of it are reproducible.
type PriorityQueue[T any, P constraints.Ordered] struct {
	items List[pq_item[T, P]]
}

func NewPriorityQueue[T any, P constraints.Ordered](capacity int) PriorityQueue[T, P] {
	return PriorityQueue[T, P]{
		items: NewList[pq_item[T, P]](capacity),
	}
}

func (self *PriorityQueue[T, P]) Length() int {
	return self.items.Length()
}

func (self *PriorityQueue[T, P]) Enqueue(value T, priority P) {
	self.items.Add(pq_item[T, P]{value: value, priority: priority})
	self._Up(self.items.Length() - 1)
}

func (self *PriorityQueue[T, P]) Dequeue() (T, bool) {
	if self.items.Length() == 0 {
		var t T
		return t, false
	}
	top := self.items[0]
	last := self.items.Length() - 1
	self.items[0] = self.items[last]
	self.items = self.items[:last]
	if last > 0 {
		self._Down(0)
	}
	return top.value, true
}

func (self *PriorityQueue[T, P]) Peek() (T, P, bool) {
	if self.items.Length() == 0 {
		var t T
		var p P
		return t, p, false
	}
	return self.items[0].value, self.items[0].priority, true
}

func (self *PriorityQueue[T, P]) _Up(index int) {
	for index > 0 {
		parent := (index - 1) / 2
		if !(self.items[index].priority < self.items[parent].priority) {
			break
		}
		self.items[index], self.items[parent] = self.items[parent], self.items[index]
		index = parent
	}
}

func (self *PriorityQueue[T, P]) _Down(index int) {
	n := self.items.Length()
	for {
		smallest := index
		left := 2*index + 1
		right := 2*index + 2
		if left < n && self.items[left].priority < self.items[smallest].priority {
			smallest = left
		}
		if right < n && self.items[right].priority < self.items[smallest].priority {
			smallest = right
		}
		if smallest == index {
			return
		}
		self.items[index], self.items[smallest] = self.items[smallest], self.items[index]
		index = smallest
	}
}
