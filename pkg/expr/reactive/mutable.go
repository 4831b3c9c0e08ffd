package reactive

// MutableReference is the owner's handle on a Reference. Share the embedded
// Reference with consumers and keep the MutableReference to update it.
type MutableReference[T any] struct {
	*Reference[T]
}

func NewMutableReference[T any](value T, opts ...ReferenceOption) *MutableReference[T] {
	return &MutableReference[T]{Reference: NewReference(value, opts...)}
}

func (m *MutableReference[T]) Update(value T) *MutableReference[T] {
	m.set(value)
	return m
}

func (m *MutableReference[T]) UpdateFunc(fn func(T) T) *MutableReference[T] {
	m.set(fn(m.Get()))
	return m
}
