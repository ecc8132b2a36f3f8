package minimax

import "fmt"

// Counters collected during a single evaluation
type Stats struct {
	// every constructed position, including the root
	Nodes uint32
	// won, lost or drawn positions
	Terminals uint32
	// stopped early, because the side to move had a winning child
	ShortCircuits uint32
	// stopped early by the alpha-beta bounds
	Cutoffs uint32
	// deepest ply reached
	MaxDepth int
}

func (s Stats) String() string {
	return fmt.Sprintf("Stats={nodes=%d, terminals=%d, short-circuits=%d, cutoffs=%d, maxdepth=%d}",
		s.Nodes, s.Terminals, s.ShortCircuits, s.Cutoffs, s.MaxDepth)
}
