package graph

//*******************************************
// enums
//*******************************************

type Direction byte

const (
	BACKWARD Direction = 0
	FORWARD  Direction = 1
)

// Hint which kind of edges a traversal is interested in.
type Adjacency byte

const (
	ADJACENT_ALL  Adjacency = 0
	ADJACENT_WAIT Adjacency = 1
	ADJACENT_RIDE Adjacency = 2
)

type EdgeKind byte

const (
	WAIT_EDGE EdgeKind = 0
	RIDE_EDGE EdgeKind = 1
)

func (self EdgeKind) String() string {
	switch self {
	case WAIT_EDGE:
		return "wait"
	case RIDE_EDGE:
		return "ride"
	default:
		return "unknown"
	}
}
