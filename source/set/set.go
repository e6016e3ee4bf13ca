package set

type Set[E comparable] map[E]struct{}

func (S Set[E]) Add(e E) {
	S[e] = struct{}{}
}

func (S Set[E]) Contains(e E) bool {
	_, found := S[e]
	return found
}

// A set which remembers the order its elements were first added in, e.g. the union of the
// columns of several tables.
type Ordered[E comparable] struct {
	members Set[E]
	order   []E
}

func NewOrdered[E comparable](slices ...[]E) *Ordered[E] {
	S := &Ordered[E]{members: Set[E]{}}
	for _, slice := range slices {
		for _, e := range slice {
			S.Add(e)
		}
	}
	return S
}

// Adds the element, returning false if it was already there.
func (S *Ordered[E]) Add(e E) bool {
	if S.members.Contains(e) {
		return false
	}
	S.members.Add(e)
	S.order = append(S.order, e)
	return true
}

func (S *Ordered[E]) Contains(e E) bool {
	return S.members.Contains(e)
}

func (S *Ordered[E]) Len() int {
	return len(S.order)
}

func (S *Ordered[E]) ToSlice() []E {
	return append([]E{}, S.order...)
}
