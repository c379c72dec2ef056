package list

func newUniqueList[T comparable]() *UniqueList[T] {
	return &UniqueList[T]{
		entries: make(map[T]struct{}),
		list:    New[T](),
	}
}

func (l *UniqueList[T]) add(value T) bool {
	if _, ok := l.entries[value]; ok {
		return false
	}
	l.entries[value] = struct{}{}
	l.list = l.list.Add(value)
	return true
}

func (l *UniqueList[T]) remove(value T) {
	if _, ok := l.entries[value]; !ok {
		return
	}
	delete(l.entries, value)
	l.list, _, _ = l.list.Remove(value, func(a, b T) bool { return a == b })
}
