package distance

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mazegrid/grid"
)

// Dijkstra labels cells with least cumulative link weight from the root.
// Only non-negative weights are supported.
type Dijkstra struct {
	opts Options
}

// NewDijkstra returns a weighted analyser.
func NewDijkstra(opts ...Option) *Dijkstra {
	return &Dijkstra{opts: newOptions(opts)}
}

// Analyse runs Dijkstra from root over the carved links.
//
// Returns ErrNilRoot, ErrBorderRoot, or ErrNegativeWeight (wrapped with the
// offending link) if a negative weight is reached.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func (d *Dijkstra) Analyse(root *grid.Cell) (*Result, error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	r := &runner{
		links: map[*grid.Cell]*PathLink{root: rootLink(root)},
		pq:    make(nodePQ, 0, 16),
	}
	heap.Init(&r.pq)
	r.push(root, grid.WeightFree, 0)
	if err := r.process(); err != nil {
		return nil, err
	}

	d.opts.Logger.Debug("dijkstra analysed", "root", root, "reached", len(r.links), "pops", r.pops, "stale", r.stale)
	return &Result{root: root, links: r.links}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	links map[*grid.Cell]*PathLink
	pq    nodePQ
	seq   int
	pops  int
	stale int
}

// push queues cell with its tentative label; seq records insertion order.
func (r *runner) push(c *grid.Cell, w int64, steps int) {
	heap.Push(&r.pq, &nodeItem{cell: c, weight: w, steps: steps, seq: r.seq})
	r.seq++
}

// process pops the least entry until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		r.pops++

		cur := r.links[item.cell]
		// a better label was recorded after this entry was queued
		if item.weight > cur.weight {
			r.stale++
			continue
		}
		if err := r.relax(cur); err != nil {
			return err
		}
	}
	return nil
}

// relax tries to improve every linked neighbour of cur.Node().
func (r *runner) relax(cur *PathLink) error {
	for _, e := range cur.node.Edges() {
		w := e.Weight
		if w < 0 {
			return fmt.Errorf("%w: %v→%v weight=%d", ErrNegativeWeight, e.Host, e.Neighbour, w)
		}
		// impassable, or would overflow past WeightInf
		if w == grid.WeightInf || w > grid.WeightInf-cur.weight {
			continue
		}
		cost := cur.weight + w
		if old, seen := r.links[e.Neighbour]; seen && old.weight <= cost {
			continue
		}
		next := cur.extend(e.Neighbour, w)
		r.links[e.Neighbour] = next
		r.push(e.Neighbour, cost, next.steps)
	}
	return nil
}

// nodeItem is a queued tentative label.
type nodeItem struct {
	cell   *grid.Cell
	weight int64
	steps  int
	seq    int
}

// nodePQ is a min-heap of *nodeItem ordered by weight, then steps, then seq.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.steps != b.steps {
		return a.steps < b.steps
	}
	return a.seq < b.seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
