package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisitedListPush(t *testing.T) {
	l := NewVisitedList()
	assert.False(t, l.Contains(1))

	l.Push(1)
	l.Push(2)
	l.Push(3)
	assert.Equal(t, []uint64{3, 2, 1}, l.IDs())

	// 重复的 ID 移动到最前
	l.Push(1)
	assert.Equal(t, []uint64{1, 3, 2}, l.IDs())
	assert.True(t, l.Contains(2))
}

func TestVisitedListCapacity(t *testing.T) {
	l := NewVisitedList()
	for id := uint64(1); id <= VisitedCapacity+1; id++ {
		l.Push(id)
	}
	assert.Equal(t, VisitedCapacity, l.Len())
	// 最早阅读的 1 被移出
	assert.False(t, l.Contains(1))
	assert.True(t, l.Contains(2))
	assert.Equal(t, uint64(VisitedCapacity+1), l.IDs()[0])
}

func TestNewVisitedListNormalize(t *testing.T) {
	ids := make([]uint64, 0, VisitedCapacity+10)
	ids = append(ids, 7, 7)
	for id := uint64(100); len(ids) < VisitedCapacity+10; id++ {
		ids = append(ids, id)
	}
	l := NewVisitedList(ids...)
	assert.Equal(t, VisitedCapacity, l.Len())
	assert.Equal(t, uint64(7), l.IDs()[0])
	assert.Equal(t, uint64(100), l.IDs()[1])
}

func TestVisitedListIDsIsCopy(t *testing.T) {
	l := NewVisitedList(1, 2)
	ids := l.IDs()
	ids[0] = 99
	assert.Equal(t, []uint64{1, 2}, l.IDs())
}
