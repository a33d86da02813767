package session

import (
	"github.com/samber/lo"
)

// VisitedCapacity 会话中最多记录的已阅读文章数量
const VisitedCapacity = 50

// VisitedList 最近阅读的文章 ID 列表：最新的在前，无重复，最多 VisitedCapacity 个
//
// 超出容量时最早阅读的文章会被移出，再次阅读时会重新计数
type VisitedList struct {
	ids []uint64
}

// NewVisitedList 由已有的 ID 序列（最新的在前）构造列表，会去重并截断
func NewVisitedList(ids ...uint64) *VisitedList {
	l := &VisitedList{ids: lo.Uniq(ids)}
	l.truncate()
	return l
}

// Contains ...
func (l *VisitedList) Contains(id uint64) bool {
	return lo.Contains(l.ids, id)
}

// Push 将 ID 放到列表最前，移除旧的重复项并截断到容量上限
func (l *VisitedList) Push(id uint64) {
	l.ids = lo.Uniq(append([]uint64{id}, l.ids...))
	l.truncate()
}

// IDs 返回列表副本
func (l *VisitedList) IDs() []uint64 {
	return append([]uint64{}, l.ids...)
}

// Len ...
func (l *VisitedList) Len() int {
	return len(l.ids)
}

func (l *VisitedList) truncate() {
	if len(l.ids) > VisitedCapacity {
		l.ids = l.ids[:VisitedCapacity]
	}
}
