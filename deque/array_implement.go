package deque

import "lz/model"

var _ Deque = (*ArrDeque)(nil)

type ArrDeque struct {
	arr []model.DrawdownSample

	// 队头所在下标
	start int
	// 元素个数
	size int
}

// 工厂方法
func NewArrDeque(capacity int) *ArrDeque {
	if capacity < 1 {
		capacity = 1
	}
	return &ArrDeque{
		arr: make([]model.DrawdownSample, capacity),
	}
}

func (ad *ArrDeque) Size() int {
	return ad.size
}

func (ad *ArrDeque) Capacity() int {
	return len(ad.arr)
}

func (ad *ArrDeque) IsFull() bool {
	return ad.size == len(ad.arr)
}

func (ad *ArrDeque) IsEmpty() bool {
	return ad.size == 0
}

// 逻辑下标到数组下标
func (ad *ArrDeque) index(i int) int {
	return (ad.start + i) % len(ad.arr)
}

func (ad *ArrDeque) Get(i int) model.DrawdownSample {
	if i < 0 || i >= ad.size {
		panic("deque: index out of range")
	}
	return ad.arr[ad.index(i)]
}

func (ad *ArrDeque) Set(i int, item model.DrawdownSample) {
	if i < 0 || i >= ad.size {
		panic("deque: index out of range")
	}
	ad.arr[ad.index(i)] = item
}

func (ad *ArrDeque) Last() (model.DrawdownSample, bool) {
	if ad.IsEmpty() {
		return model.DrawdownSample{}, false
	}
	return ad.arr[ad.index(ad.size-1)], true
}

func (ad *ArrDeque) Traverse(f func(i int, item model.DrawdownSample)) {
	for i := 0; i < ad.size; i++ {
		f(i, ad.arr[ad.index(i)])
	}
}

// AddLast 队列已满时返回 false
func (ad *ArrDeque) AddLast(item model.DrawdownSample) bool {
	if ad.IsFull() {
		return false
	}
	ad.arr[ad.index(ad.size)] = item
	ad.size++
	return true
}

func (ad *ArrDeque) RemoveLast() (model.DrawdownSample, bool) {
	if ad.IsEmpty() {
		return model.DrawdownSample{}, false
	}
	ad.size--
	item := ad.arr[ad.index(ad.size)]
	ad.arr[ad.index(ad.size)] = model.DrawdownSample{}
	return item, true
}

// AddFirst 队列已满时返回 false
func (ad *ArrDeque) AddFirst(item model.DrawdownSample) bool {
	if ad.IsFull() {
		return false
	}
	ad.start = (ad.start - 1 + len(ad.arr)) % len(ad.arr)
	ad.arr[ad.start] = item
	ad.size++
	return true
}

func (ad *ArrDeque) RemoveFirst() (model.DrawdownSample, bool) {
	if ad.IsEmpty() {
		return model.DrawdownSample{}, false
	}
	item := ad.arr[ad.start]
	ad.arr[ad.start] = model.DrawdownSample{}
	ad.start = (ad.start + 1) % len(ad.arr)
	ad.size--
	return item, true
}
