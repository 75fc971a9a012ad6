// Package hints loads declarative field-ordering rules from hints files and
// lints them for structural problems. Loading is an external collaborator of
// the resolver: invalid hints never fail resolution, they only show up here.
package hints

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/facetkit/facet/schema"
	"github.com/spf13/viper"
)

var (
	memoMu sync.RWMutex
	memo   = map[string]schema.FieldOrderRules{}
)

// Load reads a hints file (YAML, JSON or TOML, chosen by extension) into a
// rule set. Results are memoized per absolute path for the process lifetime,
// so repeated resolutions against the same file parse it once. Callers get a
// clone and may mutate it freely.
func Load(path string) (schema.FieldOrderRules, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return schema.FieldOrderRules{}, err
	}

	memoMu.RLock()
	cached, ok := memo[absPath]
	memoMu.RUnlock()
	if ok {
		return cached.Clone(), nil
	}

	rules, err := read(absPath)
	if err != nil {
		return schema.FieldOrderRules{}, err
	}

	memoMu.Lock()
	memo[absPath] = rules
	memoMu.Unlock()

	return rules.Clone(), nil
}

// read parses one hints file through a dedicated viper instance, keeping the
// global viper free for CLI configuration.
func read(absPath string) (schema.FieldOrderRules, error) {
	v := viper.New()
	v.SetConfigFile(absPath)
	if err := v.ReadInConfig(); err != nil {
		return schema.FieldOrderRules{}, fmt.Errorf("cannot read hints file %q: %w", absPath, err)
	}

	var rules schema.FieldOrderRules
	if err := v.Unmarshal(&rules); err != nil {
		return schema.FieldOrderRules{}, fmt.Errorf("cannot parse hints file %q: %w", absPath, err)
	}

	return rules, nil
}
