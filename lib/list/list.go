package list

func (l *List[T]) add(value T) *List[T] {
	if l == nil {
		l = New[T]()
	}
	entry := &listEntry[T]{value: value}
	l.generation++
	if l.head == nil {
		l.head = entry
		return l
	}
	last := l.head
	for last.next != nil {
		last = last.next
	}
	last.next = entry
	return l
}

func (l *List[T]) count() uint {
	if l == nil {
		return 0
	}
	var count uint
	for entry := l.head; entry != nil; entry = entry.next {
		count++
	}
	return count
}

func (l *List[T]) data() (T, bool) {
	if l == nil || l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

func (l *List[T]) free(releaseValues bool) {
	if l == nil {
		return
	}
	var nextEntry *listEntry[T]
	for entry := l.head; entry != nil; entry = nextEntry {
		nextEntry = entry.next
		if releaseValues && l.release != nil {
			l.release(entry.value)
		}
		entry.next = nil
	}
	l.head = nil
	l.generation++
}

func (l *List[T]) iterateValues(fn func(T) bool) bool {
	if l == nil {
		return true
	}
	var nextEntry *listEntry[T]
	for entry := l.head; entry != nil; entry = nextEntry {
		nextEntry = entry.next
		if !fn(entry.value) {
			return false
		}
	}
	return true
}

func (l *List[T]) iterator() *Iterator[T] {
	if l == nil {
		return &Iterator[T]{}
	}
	return &Iterator[T]{
		list:       l,
		current:    l.head,
		generation: l.generation,
	}
}

func (l *List[T]) nth(n uint) (T, bool) {
	if l != nil {
		var index uint
		for entry := l.head; entry != nil; entry = entry.next {
			if index == n {
				return entry.value, true
			}
			index++
		}
	}
	var zero T
	return zero, false
}

func (l *List[T]) remove(needle T, equal EqualFunc[T]) (*List[T], T, bool) {
	var zero T
	if l == nil {
		return l, zero, false
	}
	for ref := &l.head; *ref != nil; ref = &(*ref).next {
		entry := *ref
		if !equal(entry.value, needle) {
			continue
		}
		*ref = entry.next
		entry.next = nil
		l.generation++
		return l, entry.value, true
	}
	return l, zero, false
}

func (l *List[T]) removeData(needle T, equal EqualFunc[T]) *List[T] {
	l, value, ok := l.remove(needle, equal)
	if ok && l.release != nil {
		l.release(value)
	}
	return l
}

func (l *List[T]) values() []T {
	values := make([]T, 0)
	if l == nil {
		return values
	}
	for entry := l.head; entry != nil; entry = entry.next {
		values = append(values, entry.value)
	}
	return values
}

func (it *Iterator[T]) next() (T, bool) {
	var zero T
	if it.current == nil {
		return zero, false
	}
	if it.list.generation != it.generation {
		it.current = nil
		return zero, false
	}
	value := it.current.value
	it.current = it.current.next
	return value, true
}
