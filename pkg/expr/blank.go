package expr

// Blank is the payload of variants that carry nothing worth reading, such as
// a successful Result of an operation that only has side effects.
type Blank struct{}

var BlankValue = Blank{}

func (Blank) String() string {
	return "Blank"
}
