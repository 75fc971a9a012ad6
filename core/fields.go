package core

import (
	"context"
	"errors"

	"github.com/facetkit/facet/core/engine"
	"github.com/facetkit/facet/internal/contract"
	"github.com/facetkit/facet/internal/hints"
	"github.com/facetkit/facet/schema"
)

// resolveFieldSet determines the fields to order: an explicit --fields list
// wins, otherwise the dataset names of the configured data file stand in.
func resolveFieldSet(ctx context.Context, cfg *contract.Config, client contract.DataClient, mgr contract.CacheManager) ([]string, error) {
	if len(cfg.Fields) > 0 {
		return cfg.Fields, nil
	}
	if cfg.DataPath == "" {
		return nil, errors.New("no fields given: pass --fields or a data file")
	}

	datasets, _, err := cachedLoadDatasets(ctx, cfg, client, mgr)
	if err != nil {
		return nil, err
	}
	datasets = filterDatasets(datasets, cfg.Excludes)
	if len(datasets) == 0 {
		return nil, errors.New("no datasets found")
	}

	fields := make([]string, 0, len(datasets))
	for _, ds := range datasets {
		fields = append(fields, ds.Name)
	}
	return fields, nil
}

// loadRules reads the hints file when one is configured. Without a hints file
// resolution still works and degrades to the input order.
func loadRules(cfg *contract.Config) (schema.FieldOrderRules, error) {
	if cfg.HintsPath == "" {
		return schema.FieldOrderRules{}, nil
	}
	return hints.Load(cfg.HintsPath)
}

// ResolveFieldOrderDecision runs the resolver and assembles the display
// metadata for the decision: which group placed each grouped field, under the
// active trait. The HTTP front-end calls this directly with inline rules.
func ResolveFieldOrderDecision(fields []string, rules schema.FieldOrderRules, trait schema.Trait) schema.FieldOrderDecision {
	order := engine.ResolveFieldOrder(fields, rules, trait)

	present := make(map[string]struct{}, len(order))
	for _, f := range order {
		present[f] = struct{}{}
	}

	// First group wins, matching resolver placement.
	var groupOf map[string]string
	for _, group := range engine.ActiveRules(rules, trait).Groups {
		for _, f := range group.Fields {
			if _, ok := present[f]; !ok {
				continue
			}
			if _, taken := groupOf[f]; taken {
				continue
			}
			if groupOf == nil {
				groupOf = make(map[string]string)
			}
			groupOf[f] = group.ID
		}
	}

	return schema.FieldOrderDecision{
		Fields:  fields,
		Trait:   trait,
		Order:   order,
		GroupOf: groupOf,
	}
}
