package solver

import "container/heap"

// Node is a search tree entry. Parent is a shared back reference forming
// a chain to the root; walking it yields the move sequence in reverse.
// Nodes are never mutated after construction, so ancestors stay valid for
// as long as any descendant is reachable. Identity for the visited set is
// the compact State alone; Score and Level play no part in it.
type Node struct {
	State  int
	Parent *Node
	Score  int
	Level  int
}

// openSet is the frontier: a min-queue over Node scores. Ties resolve by
// insertion order, so runs are reproducible. The same state may be queued
// more than once; duplicates drain at extraction time against the closed
// set instead of being deduplicated on insert.
type openSet struct {
	items nodeQueue
	seq   int
}

func newOpenSet() *openSet {
	s := &openSet{}
	heap.Init(&s.items)
	return s
}

func (s *openSet) push(n *Node) {
	s.seq++
	heap.Push(&s.items, &queueItem{node: n, seq: s.seq})
}

func (s *openSet) pop() *Node {
	return heap.Pop(&s.items).(*queueItem).node
}

func (s *openSet) len() int {
	return len(s.items)
}

func (s *openSet) nodes() []*Node {
	all := make([]*Node, len(s.items))
	for i, item := range s.items {
		all[i] = item.node
	}
	return all
}

type queueItem struct {
	node  *Node
	seq   int
	index int
}

type nodeQueue []*queueItem

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	if q[i].node.Score != q[j].node.Score {
		return q[i].node.Score < q[j].node.Score
	}
	return q[i].seq < q[j].seq
}

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // avoid memory leak
	item.index = -1
	*q = old[:n-1]
	return item
}
