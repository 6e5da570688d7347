package layout

// Role decides how an element takes its share of the container.
type Role int

const (
	// Flexer consumes flex * available extent.
	Flexer Role = iota
	// AntiFlexer receives the remainder, bounded below by MinSize.
	AntiFlexer
)

func (r Role) String() string {
	if r == AntiFlexer {
		return "anti-flexer"
	}
	return "flexer"
}

// Element is one of the two panes of a container. MinSize only applies to
// the anti-flexer. A Sticky element keeps its last explicit size when the
// container extent changes underneath it.
type Element struct {
	Role    Role
	MinSize int
	Sticky  bool
}
