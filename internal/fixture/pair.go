package fixture

import (
	"fmt"
	"path/filepath"

	"fixclean/internal/config"
)

// Pair names the two documents of a run.
type Pair struct {
	// Primary is filtered in place and provides the text that is reconciled.
	Primary string
	// Secondary is filtered in place, serves as the quote reference, and is
	// finally overwritten with the reconciled primary text.
	Secondary string
}

// PairFromConfig resolves the configured document pair.
func PairFromConfig(cfg *config.Config) Pair {
	return Pair{Primary: cfg.PrimaryPath(), Secondary: cfg.SecondaryPath()}
}

// Dir returns the directory of the primary document.
func (p Pair) Dir() string {
	return filepath.Dir(p.Primary)
}

func (p Pair) validate() error {
	if p.Primary == "" || p.Secondary == "" {
		return fmt.Errorf("fixture pair requires both paths (primary %q, secondary %q)", p.Primary, p.Secondary)
	}
	if filepath.Clean(p.Primary) == filepath.Clean(p.Secondary) {
		return fmt.Errorf("fixture pair paths must differ: %s", p.Primary)
	}
	return nil
}
