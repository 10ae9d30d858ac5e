package calculator

import (
	"math"
	"sync"

	"lz/deque"
	"lz/model"
)

const SecondsPerYear = 365 * 24 * 3600

// History keeps one average drawdown sample per simulated year, ordered by
// year. Samples for a year already recorded replace the previous value; when
// the ring is full the oldest year is dropped.
type History struct {
	mu      sync.Mutex
	samples *deque.ArrDeque
}

func NewHistory(capacity int) *History {
	return &History{samples: deque.NewArrDeque(capacity)}
}

func YearOf(seconds float64) int {
	return int(math.Floor(seconds / SecondsPerYear))
}

func (h *History) Record(seconds, drawdown float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	s := model.DrawdownSample{Year: YearOf(seconds), Drawdown: drawdown}
	for i := 0; i < h.samples.Size(); i++ {
		if h.samples.Get(i).Year == s.Year {
			h.samples.Set(i, s)
			return
		}
	}
	if last, ok := h.samples.Last(); !ok || last.Year < s.Year {
		if h.samples.IsFull() {
			h.samples.RemoveFirst()
		}
		h.samples.AddLast(s)
		return
	}
	// 回退到尚未记录的年份（seek），按年份插入
	h.insert(s)
}

func (h *History) insert(s model.DrawdownSample) {
	items := make([]model.DrawdownSample, 0, h.samples.Size()+1)
	inserted := false
	h.samples.Traverse(func(_ int, item model.DrawdownSample) {
		if !inserted && s.Year < item.Year {
			items = append(items, s)
			inserted = true
		}
		items = append(items, item)
	})
	if n := h.samples.Capacity(); len(items) > n {
		items = items[len(items)-n:]
	}
	for !h.samples.IsEmpty() {
		h.samples.RemoveFirst()
	}
	for _, item := range items {
		h.samples.AddLast(item)
	}
}

func (h *History) Samples() []model.DrawdownSample {
	h.mu.Lock()
	defer h.mu.Unlock()

	res := make([]model.DrawdownSample, 0, h.samples.Size())
	h.samples.Traverse(func(_ int, item model.DrawdownSample) {
		res = append(res, item)
	})
	return res
}

func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for !h.samples.IsEmpty() {
		h.samples.RemoveFirst()
	}
}
