package list

// CompareFunc returns a negative number if a sorts before b, zero if they are
// equal and a positive number if a sorts after b.
type CompareFunc[T any] func(a, b T) int

// EqualFunc returns true if a and b match.
type EqualFunc[T any] func(a, b T) bool

// List is a singly linked list of values. The zero value and the nil pointer
// are both empty lists. The length is not tracked; it is computed on demand.
// A List is not safe for concurrent use.
type List[T any] struct {
	head       *listEntry[T]
	release    func(T)
	generation uint64
}

type listEntry[T any] struct {
	next  *listEntry[T]
	value T
}

// Iterator is a one-shot cursor over a List. Once Next returns false the
// Iterator is exhausted and stays exhausted. Mutating the list exhausts all
// Iterators created before the mutation.
type Iterator[T any] struct {
	list       *List[T]
	current    *listEntry[T]
	generation uint64
}

// New creates an empty list which borrows its values: the list never releases
// them.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewOwned creates an empty list which owns its values. The release function
// is called exactly once for each value dropped by RemoveData or FreeAll.
func NewOwned[T any](release func(T)) *List[T] {
	return &List[T]{release: release}
}

// Add appends value to the back of the list. As with append, the caller must
// use the returned list: a nil list yields a new borrowing list.
func (l *List[T]) Add(value T) *List[T] {
	return l.add(value)
}

// Count returns the number of entries in the list.
func (l *List[T]) Count() uint {
	return l.count()
}

// Data returns the value at the front of the list. If the list is empty, the
// zero value and false are returned.
func (l *List[T]) Data() (T, bool) {
	return l.data()
}

// Free drops all entries without releasing their values. Use this for lists
// of borrowed values. The list is empty afterwards.
func (l *List[T]) Free() {
	l.free(false)
}

// FreeAll releases every owned value and then drops all entries. The list is
// empty afterwards, so calling FreeAll again does nothing.
func (l *List[T]) FreeAll() {
	l.free(true)
}

// IterateValues will call fn for each value in the list, starting from the
// front. If fn returns false the iteration terminates and IterateValues will
// return false, else it will return true.
func (l *List[T]) IterateValues(fn func(T) bool) bool {
	return l.iterateValues(fn)
}

// Iterator returns a new Iterator positioned at the front of the list.
func (l *List[T]) Iterator() *Iterator[T] {
	return l.iterator()
}

// Nth returns the value at position n (counting from 0). If there is no such
// position, the zero value and false are returned.
func (l *List[T]) Nth(n uint) (T, bool) {
	return l.nth(n)
}

// Remove unlinks the first entry whose value matches needle and returns the
// value to the caller without releasing it. If there is no match the list is
// returned unchanged and false is returned.
func (l *List[T]) Remove(needle T, equal EqualFunc[T]) (*List[T], T, bool) {
	return l.remove(needle, equal)
}

// RemoveData unlinks the first entry whose value matches needle. If the list
// owns its values the matched value is released. If there is no match the list
// is returned unchanged.
func (l *List[T]) RemoveData(needle T, equal EqualFunc[T]) *List[T] {
	return l.removeData(needle, equal)
}

// Sort performs a stable merge sort of the list using compare. Entries are
// relinked; values are not copied. The sorted list is returned.
func (l *List[T]) Sort(compare CompareFunc[T]) *List[T] {
	return l.sort(compare)
}

// Values returns a slice of the values in the list.
func (l *List[T]) Values() []T {
	return l.values()
}

// Next returns the value at the cursor and advances it. When there are no more
// values (or the list was mutated) the zero value and false are returned.
func (it *Iterator[T]) Next() (T, bool) {
	return it.next()
}

// UniqueList is an insertion-ordered set of values.
type UniqueList[T comparable] struct {
	entries map[T]struct{}
	list    *List[T]
}

// NewUnique creates an empty list of unique values.
func NewUnique[T comparable]() *UniqueList[T] {
	return newUniqueList[T]()
}

// Add appends value if it is not already present. It returns true if the value
// was added.
func (l *UniqueList[T]) Add(value T) bool {
	return l.add(value)
}

// Has returns true if value is present.
func (l *UniqueList[T]) Has(value T) bool {
	_, ok := l.entries[value]
	return ok
}

// Length returns the number of values in the list.
func (l *UniqueList[T]) Length() uint {
	return uint(len(l.entries))
}

// Remove removes value from the list if present.
func (l *UniqueList[T]) Remove(value T) {
	l.remove(value)
}

// Values returns a slice of the values in insertion order.
func (l *UniqueList[T]) Values() []T {
	return l.list.Values()
}
