package orthtree

import "fmt"

// DefaultGroupCount is the default split/merge threshold per node.
const DefaultGroupCount = 10

// Config fixes the construction-time parameters of a tree. A Config is
// consumed once by New; trees carry no mutable runtime configuration.
type Config struct {
	// Dim is the dimension count of the indexed space. Must be positive.
	Dim int
	// GroupCount is the bucket capacity that triggers a split on insertion
	// and, symmetrically, the subtree population that triggers a merge on
	// deletion. Zero selects DefaultGroupCount.
	GroupCount int
	// SharedValues selects the experimental overlap-tolerant placement
	// discipline: boxes may be registered in multiple leaves instead of
	// being kept at the deepest node that fully contains them.
	SharedValues bool
	// DisableChecks switches off precondition validation and internal
	// structural assertions. With checks disabled, violated preconditions
	// are undefined behavior and may corrupt the tree silently.
	DisableChecks bool
}

func (cfg Config) normalized() Config {
	if cfg.GroupCount == 0 {
		cfg.GroupCount = DefaultGroupCount
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Dim <= 0 {
		return fmt.Errorf("%w: dimension count must be positive, have %d", ErrInvalidConfig, cfg.Dim)
	}
	if cfg.GroupCount < 0 {
		return fmt.Errorf("%w: group count must be positive, have %d", ErrInvalidConfig, cfg.GroupCount)
	}
	return nil
}

// params is the normalized configuration shared by every node of one tree.
type params struct {
	dim        int
	groupCount int
	shared     bool
	checks     bool
}
