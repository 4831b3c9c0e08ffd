package reactive

type config struct {
	guarded bool
}

// ReferenceOption configures a reference at construction.
type ReferenceOption func(*config)

// WithReentrancyGuard makes an update issued while the reference is still
// notifying subscribers panic with expr.ErrReentrantUpdate.
func WithReentrancyGuard() ReferenceOption {
	return func(c *config) {
		c.guarded = true
	}
}

func newConfig(opts []ReferenceOption) config {
	c := config{}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
