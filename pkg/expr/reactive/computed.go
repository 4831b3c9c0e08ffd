package reactive

// Source is a reference a computed reference can depend on.
type Source interface {
	subscribeChange(onChange func())
}

type Dependencies struct {
	sources []Source
}

func DependenciesOf(sources ...Source) Dependencies {
	return Dependencies{sources: sources}
}

func DependenciesFrom(sources []Source) Dependencies {
	return DependenciesOf(sources...)
}

// Computed evaluates derive once, then re-evaluates it in full and replaces
// its value each time any dependency changes. A change that reaches it through
// several dependencies re-evaluates once per dependency.
func Computed[T any](dependencies Dependencies, derive func() T, opts ...ReferenceOption) *Reference[T] {
	computed := NewReference(derive(), opts...)

	for _, source := range dependencies.sources {
		source.subscribeChange(func() {
			computed.set(derive())
		})
	}

	return computed
}
