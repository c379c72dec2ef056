package list

func (l *List[T]) sort(compare CompareFunc[T]) *List[T] {
	if l == nil {
		return l
	}
	l.head = mergeSort(l.head, l.count(), compare)
	l.generation++
	return l
}

// mergeSort sorts the first n entries of the chain starting at head. The
// chain must contain exactly n entries.
func mergeSort[T any](head *listEntry[T], n uint,
	compare CompareFunc[T]) *listEntry[T] {
	if n < 2 {
		return head
	}
	half := n / 2
	last := head
	for index := uint(1); index < half; index++ {
		last = last.next
	}
	right := last.next
	last.next = nil
	return merge(mergeSort(head, half, compare),
		mergeSort(right, n-half, compare), compare)
}

// merge takes from left on ties, which keeps the sort stable.
func merge[T any](left, right *listEntry[T],
	compare CompareFunc[T]) *listEntry[T] {
	var head *listEntry[T]
	tail := &head
	for left != nil && right != nil {
		if compare(left.value, right.value) <= 0 {
			*tail = left
			left = left.next
		} else {
			*tail = right
			right = right.next
		}
		tail = &(*tail).next
	}
	if left != nil {
		*tail = left
	} else {
		*tail = right
	}
	return head
}
