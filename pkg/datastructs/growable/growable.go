package growable

import (
	"github.com/huynhanx03/go-collections/pkg/utils"
)

// Buffer is a contiguous, resizable sequence of T with indexed access.
// Every slot of data is allocated; only [0, size) is live.
// The zero value is an empty buffer with no capacity.
// It is NOT thread-safe.
type Buffer[T any] struct {
	data []T // backing storage, len(data) is the capacity
	size int // number of live elements
}

// New creates an empty Buffer with DefaultCapacity slots.
func New[T any]() *Buffer[T] {
	return NewWithCapacity[T](DefaultCapacity)
}

// NewWithCapacity creates an empty Buffer with the given number of slots.
// A negative capacity is treated as zero.
func NewWithCapacity[T any](capacity int) *Buffer[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer[T]{data: make([]T, capacity)}
}

// From creates a Buffer holding a copy of values in the same order.
func From[T any](values ...T) *Buffer[T] {
	capacity := max(len(values), DefaultCapacity)
	b := NewWithCapacity[T](capacity)
	b.size = copy(b.data, values)
	return b
}

// Size returns the number of live elements.
func (b *Buffer[T]) Size() int {
	return b.size
}

// Capacity returns the number of allocated slots.
func (b *Buffer[T]) Capacity() int {
	return len(b.data)
}

// IsEmpty reports whether the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.size == 0
}

// Append adds v at the end, growing the storage if it is full.
// Slices previously obtained from the buffer must not be used afterwards.
func (b *Buffer[T]) Append(v T) {
	if b.size == len(b.data) {
		b.grow(b.size + 1)
	}
	b.data[b.size] = v
	b.size++
}

// RemoveLast removes and returns the last element.
// Capacity is retained.
func (b *Buffer[T]) RemoveLast() (T, error) {
	var zero T
	if b.size == 0 {
		return zero, empty("RemoveLast")
	}
	b.size--
	v := b.data[b.size]
	b.data[b.size] = zero
	return v, nil
}

// InsertAt inserts v so that it becomes the element at index,
// shifting [index, Size()) one slot toward the tail.
// Valid indices are [0, Size()]; InsertAt(Size(), v) is the same as Append(v).
func (b *Buffer[T]) InsertAt(index int, v T) error {
	if index < 0 || index > b.size {
		return outOfRange("InsertAt", index, b.size)
	}
	if b.size == len(b.data) {
		b.grow(b.size + 1)
	}
	copy(b.data[index+1:b.size+1], b.data[index:b.size])
	b.data[index] = v
	b.size++
	return nil
}

// RemoveAt removes and returns the element at index,
// shifting (index, Size()) one slot toward the head.
func (b *Buffer[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= b.size {
		return zero, outOfRange("RemoveAt", index, b.size)
	}
	v := b.data[index]
	copy(b.data[index:b.size-1], b.data[index+1:b.size])
	b.size--
	b.data[b.size] = zero
	return v, nil
}

// Get returns the element at index.
func (b *Buffer[T]) Get(index int) (T, error) {
	if index < 0 || index >= b.size {
		var zero T
		return zero, outOfRange("Get", index, b.size)
	}
	return b.data[index], nil
}

// MustGet is like Get but panics if index is out of range.
func (b *Buffer[T]) MustGet(index int) T {
	v, err := b.Get(index)
	if err != nil {
		panic(err)
	}
	return v
}

// Set overwrites the element at index in place.
func (b *Buffer[T]) Set(index int, v T) error {
	if index < 0 || index >= b.size {
		return outOfRange("Set", index, b.size)
	}
	b.data[index] = v
	return nil
}

// Reserve ensures there are at least n slots.
// The new capacity is rounded up to a power of two unless n is above
// utils.MaxPowerOfTwo, in which case exactly n slots are allocated. It never shrinks.
func (b *Buffer[T]) Reserve(n int) {
	if n <= len(b.data) {
		return
	}
	b.realloc(reserveCapacity(n))
}

// Clear drops all elements. The allocated slots are kept.
func (b *Buffer[T]) Clear() {
	clear(b.data[:b.size])
	b.size = 0
}

// Values returns a copy of the live elements in storage order.
func (b *Buffer[T]) Values() []T {
	values := make([]T, b.size)
	copy(values, b.data[:b.size])
	return values
}

// grow replaces the storage with one that holds at least required slots.
func (b *Buffer[T]) grow(required int) {
	capacity := len(b.data) * growthFactor
	if capacity == 0 {
		capacity = DefaultCapacity
	}
	if capacity < required {
		capacity = required
	}
	b.realloc(capacity)
}

func reserveCapacity(n int) int {
	if n > utils.MaxPowerOfTwo {
		return n
	}
	return utils.CeilToPowerOfTwo(n)
}

func (b *Buffer[T]) realloc(capacity int) {
	newData := make([]T, capacity)
	copy(newData, b.data[:b.size])
	b.data = newData
}
