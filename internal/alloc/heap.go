package alloc

// candidate is one heap entry: the next available word-length upgrade for
// a BFU, keyed by the marginal benefit of taking it.
type candidate struct {
	bfu      int
	priority float64
}

// maxHeap is a binary max-heap over candidate.priority, implemented
// explicitly (push/pop with siftUp/siftDown) rather than via
// container/heap, per spec.md §9's "heap with priority updates" decision:
// entries are popped, mutated, and reinserted rather than updated in
// place, so no duplicate ever sits in the heap at once.
type maxHeap struct {
	items []candidate
}

func (h *maxHeap) push(c candidate) {
	h.items = append(h.items, c)
	h.siftUp(len(h.items) - 1)
}

func (h *maxHeap) pop() (candidate, bool) {
	if len(h.items) == 0 {
		return candidate{}, false
	}
	top := h.items[0]
	last := len(h.items) - 1
	h.items[0] = h.items[last]
	h.items = h.items[:last]
	if len(h.items) > 0 {
		h.siftDown(0)
	}
	return top, true
}

func (h *maxHeap) len() int { return len(h.items) }

func (h *maxHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.items[parent].priority >= h.items[i].priority {
			return
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

func (h *maxHeap) siftDown(i int) {
	n := len(h.items)
	for {
		left := 2*i + 1
		right := 2*i + 2
		largest := i
		if left < n && h.items[left].priority > h.items[largest].priority {
			largest = left
		}
		if right < n && h.items[right].priority > h.items[largest].priority {
			largest = right
		}
		if largest == i {
			return
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}
