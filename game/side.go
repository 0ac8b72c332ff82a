package game

// Side identifies a paddle's half of the field
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

var sideName = map[Side]string{
	SideNone:  "none",
	SideLeft:  "left",
	SideRight: "right",
}

func (s Side) String() string {
	return sideName[s]
}

// Opposite returns the other paddle's side
func (s Side) Opposite() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	}
	return SideNone
}
