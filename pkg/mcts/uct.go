package mcts

import "math"

// selectChild returns the index of parent's child with the highest UCT
// score: q(c) + exploration*sqrt(log(max(1,parent.visits))/(1+c.visits)).
// The 1+ term in the denominator means an unvisited child is scored by
// the same formula as any other, rather than needing a special case: its
// q is 0 and its exploration bonus is exploration*sqrt(lnParentVisits).
func selectChild(a *arena, parentIdx int32, c float64) int32 {
	parent := a.get(parentIdx)
	parentVisits := parent.visits
	if parentVisits < 1 {
		parentVisits = 1
	}
	lnParentVisits := math.Log(float64(parentVisits))

	best := parent.children[0]
	bestScore := math.Inf(-1)

	for _, childIdx := range parent.children {
		child := a.get(childIdx)
		uct := child.q() + c*math.Sqrt(lnParentVisits/float64(1+child.visits))
		if uct > bestScore {
			bestScore = uct
			best = childIdx
		}
	}
	return best
}
