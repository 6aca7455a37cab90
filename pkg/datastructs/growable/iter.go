package growable

import "iter"

// All yields the live elements with their index in storage order.
// The buffer must not be modified during iteration.
func (b *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < b.size; i++ {
			if !yield(i, b.data[i]) {
				return
			}
		}
	}
}

// Backward yields the live elements with their index from the tail to the head.
// Removing the yielded element with RemoveAt is safe.
func (b *Buffer[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := b.size - 1; i >= 0; i-- {
			if i >= b.size {
				continue
			}
			if !yield(i, b.data[i]) {
				return
			}
		}
	}
}
