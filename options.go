package rocket

import "fmt"

// Option configures a search invocation.
type Option func(*searchConfig)

type searchConfig struct {
	maxDepth int
	cheap    CheapSet
	progress func(line string)
}

func defaultSearchConfig() *searchConfig {
	return &searchConfig{
		maxDepth: 5,
		progress: func(string) {},
	}
}

// WithMaxDepth sets the reorientation budget ceiling for the iterative
// deepening loop. It must be between 0 and MaxReorients.
func WithMaxDepth(depth int) Option {
	return func(c *searchConfig) {
		c.maxDepth = depth
	}
}

// WithCheapMoves overrides the cost of the given reorientations to 1.
func WithCheapMoves(set CheapSet) Option {
	return func(c *searchConfig) {
		c.cheap = set
	}
}

// WithProgress installs a callback receiving one line per budget level
// attempted. The callback runs on the searching goroutine.
func WithProgress(fn func(line string)) Option {
	return func(c *searchConfig) {
		c.progress = fn
	}
}

// validate rejects configurations that could overflow the fixed-capacity
// search buffers before any work starts.
func (c *searchConfig) validate(moveCount int) error {
	if c.maxDepth < 0 || c.maxDepth > MaxReorients {
		return fmt.Errorf("%w: %d (must be 0..%d)", ErrDepthOutOfRange, c.maxDepth, MaxReorients)
	}
	if moveCount > StateCapacity {
		return fmt.Errorf("%w: %d moves (max %d)", ErrSequenceTooLong, moveCount, StateCapacity)
	}
	return nil
}
