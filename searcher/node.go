package searcher

import (
	"ttt/fixed"
	"ttt/game"
)

// node is one arena slot of the search tree. Children of a node are stored
// contiguously in [first, first+count); parents are referenced by index and
// never owned.
type node struct {
	move   int
	player game.Mark // Mark that played move; the root holds the last mover
	visits uint32
	score  fixed.Fixed // Sum of outcomes from player's perspective
	parent int32
	first  int32
	count  int32
}

func (n *node) expanded() bool {
	return n.count > 0
}

// tree is owned by a single search call and dropped when it returns.
type tree struct {
	nodes []node
}

const root int32 = 0

func newTree(player game.Mark, capacity int) *tree {
	t := &tree{nodes: make([]node, 1, max(1, capacity))}
	t.nodes[root] = node{
		move:   noMove,
		player: player.Opponent(),
		parent: noParent,
	}
	return t
}

func (t *tree) at(i int32) *node {
	return &t.nodes[i]
}

func (t *tree) size() int {
	return len(t.nodes)
}

// expand adds one unvisited child per legal move of b.
func (t *tree) expand(i int32, b *game.Board) {
	if t.nodes[i].expanded() {
		panic("node is already expanded")
	}
	first := int32(len(t.nodes))
	mover := t.nodes[i].player.Opponent()
	for move := range b.Moves() {
		t.nodes = append(t.nodes, node{
			move:   move,
			player: mover,
			parent: i,
		})
	}
	parent := &t.nodes[i]
	parent.first = first
	parent.count = int32(len(t.nodes)) - first
}

// backup walks from i to the root. Each ply's outcome is complementary to
// its parent's.
func (t *tree) backup(i int32, value fixed.Fixed) {
	for i != noParent {
		n := &t.nodes[i]
		n.visits++
		n.score += value
		value = fixed.One - value
		i = n.parent
	}
}

// mostVisited returns the child of i with the highest visit count; the
// first one wins ties.
func (t *tree) mostVisited(i int32) int32 {
	n := t.nodes[i]
	if !n.expanded() {
		panic("node has no children")
	}
	best := n.first
	for c := n.first + 1; c < n.first+n.count; c++ {
		if t.nodes[c].visits > t.nodes[best].visits {
			best = c
		}
	}
	return best
}
