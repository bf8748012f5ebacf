package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayList_Add(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)

	assert.Equal(t, 2, list.Size())
	assert.False(t, list.IsEmpty())
}

func TestArrayList_RemoveWhere(t *testing.T) {
	list := &ArrayList[int]{}
	list.Add(10)
	list.Add(20)
	list.Add(20)

	assert.True(t, list.RemoveWhere(func(v int) bool { return v == 20 }))
	assert.Equal(t, []int{10, 20}, items(list))
	assert.False(t, list.RemoveWhere(func(v int) bool { return v == 99 }))
}

func TestArrayList_Dequeue(t *testing.T) {
	list := &ArrayList[int]{}

	list.Add(10)
	list.Add(20)
	list.Add(30)

	value, err := list.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, 10, value)
	assert.Equal(t, 2, list.Size())

	value, err = list.First()
	require.NoError(t, err)
	assert.Equal(t, 20, value)
	assert.Equal(t, 2, list.Size())
}

func TestArrayList_Dequeue_ThrowError(t *testing.T) {
	list := &ArrayList[int]{}

	_, err := list.Dequeue()
	assert.Error(t, err)

	_, err = list.First()
	assert.Error(t, err)
	assert.True(t, list.IsEmpty())
}

func TestArrayList_All(t *testing.T) {
	list := &ArrayList[int]{}
	list.Add(1)
	list.Add(2)
	list.Add(3)

	var seen []int
	for _, v := range list.All() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2}, seen)

	sum := 0
	list.ForEach(func(v int) { sum += v })
	assert.Equal(t, 6, sum)
}

func items[T any](list *ArrayList[T]) []T {
	var out []T
	for _, item := range list.All() {
		out = append(out, item)
	}
	return out
}
