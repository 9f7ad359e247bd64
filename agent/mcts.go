package agent

import (
	"math"

	"catan/game"
)

// MCTSOption configures the search agent.
type MCTSOption func(*mctsAgent)

// WithEpisodes sets the number of search episodes per move.
func WithEpisodes(episodes int) MCTSOption {
	return func(m *mctsAgent) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

// WithCutoff caps rollout depth; positions cut off are scored by the
// heuristic instead of playing to the end.
func WithCutoff(depth int) MCTSOption {
	return func(m *mctsAgent) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithExploration sets the UCB exploration constant.
func WithExploration(c float64) MCTSOption {
	return func(m *mctsAgent) {
		if c > 0 {
			m.explore = c
		}
	}
}

type mctsAgent struct {
	episodes int
	cutoff   int
	explore  float64
	rng      *game.RNG
}

// NewMCTSAgent runs Monte Carlo tree search over the legal-action space:
// UCB1 selection, single-node expansion, random rollout, and per-seat reward
// backpropagation. Dice and steal outcomes are resampled on every descent,
// so chancy actions accumulate averaged statistics rather than exact ones.
func NewMCTSAgent(seed uint64, options ...MCTSOption) Agent {
	m := &mctsAgent{
		episodes: 200,
		cutoff:   120,
		explore:  math.Sqrt2,
		rng:      game.NewRNG(seed),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

type searchNode struct {
	action   game.Action
	player   int // seat that played action to reach this node
	parent   *searchNode
	children []*searchNode
	untried  []game.Action
	visits   float64
	rewards  float64
}

func (a *mctsAgent) ChooseAction(gs *game.GameState) (game.Action, error) {
	actions := gs.LegalActions()
	switch len(actions) {
	case 0:
		return game.Action{}, ErrNoActions
	case 1:
		return actions[0], nil
	}

	root := &searchNode{untried: actions}
	for i := 0; i < a.episodes; i++ {
		a.runEpisode(root, gs)
	}

	// Most-visited child is the policy's answer.
	best := root.children[0]
	for _, child := range root.children[1:] {
		if child.visits > best.visits {
			best = child
		}
	}
	return best.action, nil
}

func (a *mctsAgent) runEpisode(root *searchNode, gs *game.GameState) {
	node := root
	state := gs

	// Selection: replay the tree path, resampling stochastic outcomes.
	for len(node.untried) == 0 && len(node.children) > 0 {
		node = a.selectChild(node)
		next, err := state.Apply(node.action)
		if err != nil {
			// The resampled line made this child illegal; score from here.
			node = node.parent
			break
		}
		state = next
	}

	// Expansion.
	if len(node.untried) > 0 && state.Phase != game.PhaseGameOver {
		pick := a.rng.Intn(len(node.untried))
		action := node.untried[pick]
		node.untried = append(node.untried[:pick], node.untried[pick+1:]...)

		next, err := state.Apply(action)
		if err == nil {
			child := &searchNode{
				action:  action,
				player:  action.Player,
				parent:  node,
				untried: next.LegalActions(),
			}
			node.children = append(node.children, child)
			node = child
			state = next
		}
	}

	scores := a.rollout(state)

	// Backpropagation: each node banks the reward of the seat that moved
	// into it.
	for n := node; n != nil; n = n.parent {
		n.visits++
		n.rewards += scores[n.player]
	}
}

func (a *mctsAgent) selectChild(node *searchNode) *searchNode {
	logN := math.Log(node.visits)
	best := node.children[0]
	bestScore := math.Inf(-1)
	for _, child := range node.children {
		exploit := child.rewards / child.visits
		explore := a.explore * math.Sqrt(logN/child.visits)
		if score := exploit + explore; score > bestScore {
			bestScore = score
			best = child
		}
	}
	return best
}

// rollout plays random legal actions to the end of the game or the cutoff,
// returning a per-seat score in [0,1].
func (a *mctsAgent) rollout(gs *game.GameState) []float64 {
	state := gs
	for depth := 0; depth < a.cutoff && state.Phase != game.PhaseGameOver; depth++ {
		actions := state.LegalActions()
		if len(actions) == 0 {
			break
		}
		next, err := state.Apply(actions[a.rng.Intn(len(actions))])
		if err != nil {
			break
		}
		state = next
	}

	scores := make([]float64, state.PlayerCount())
	if state.Phase == game.PhaseGameOver {
		scores[state.WinnerID] = 1
		return scores
	}
	for pid := range scores {
		scores[pid] = (game.EvaluatePosition(state, pid) + 1) / 2
	}
	return scores
}
