/**
 *
 * 利用数组实现的定长双端队列，用于保存温降历史
 * 队列满时由调用方决定丢弃哪一端的元素
 *
 */

package deque

import "lz/model"

type Deque interface {
	// 队列的长度
	Size() int

	// 容量
	Capacity() int

	// 获取队列中对应下标的元素，0 为队头
	Get(i int) model.DrawdownSample

	// 设定队列中对应下标的元素
	Set(i int, item model.DrawdownSample)

	// 队尾元素
	Last() (model.DrawdownSample, bool)

	// 正向遍历
	Traverse(f func(i int, item model.DrawdownSample))

	// 在队列结尾增加一个元素
	AddLast(item model.DrawdownSample) bool

	// 在队列结尾删除一个元素
	RemoveLast() (model.DrawdownSample, bool)

	// 在队列头部增加一个元素
	AddFirst(item model.DrawdownSample) bool

	// 在队列头部删除一个元素
	RemoveFirst() (model.DrawdownSample, bool)

	IsFull() bool

	IsEmpty() bool
}
