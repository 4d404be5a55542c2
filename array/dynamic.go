package array

// Dynamic is an array that doubles its capacity whenever it runs out
// of room. A zero value Dynamic is ready to use and starts with no
// capacity.
type Dynamic[T comparable] struct {
	store[T]
}

// NewDynamic returns an empty Dynamic with room for capacity elements.
func NewDynamic[T comparable](capacity int) (*Dynamic[T], error) {
	s, err := newStore[T](capacity)
	if err != nil {
		return nil, err
	}
	return &Dynamic[T]{store: s}, nil
}

// NewDefaultDynamic returns an empty Dynamic with room for
// [DefaultCapacity] elements.
func NewDefaultDynamic[T comparable]() *Dynamic[T] {
	return &Dynamic[T]{store: store[T]{arr: make([]T, DefaultCapacity)}}
}

// DynamicOf returns a Dynamic holding a copy of vs. Its capacity is
// exactly len(vs).
func DynamicOf[T comparable](vs ...T) *Dynamic[T] {
	arr := make([]T, len(vs))
	copy(arr, vs)
	return &Dynamic[T]{store: store[T]{arr: arr, n: len(vs)}}
}

// Add appends v, growing the array if it is full.
func (a *Dynamic[T]) Add(v T) {
	if a.n == len(a.arr) {
		a.grow()
	}

	a.arr[a.n] = v
	a.n++
}

func (a *Dynamic[T]) grow() {
	size := 2 * len(a.arr)
	if size == 0 {
		size = 1
	}

	arr := make([]T, size)
	copy(arr, a.arr[:a.n])
	a.arr = arr
}
