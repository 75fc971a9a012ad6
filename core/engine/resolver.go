package engine

import (
	"sort"

	"github.com/facetkit/facet/schema"
)

// ResolveFieldOrder turns declarative, possibly-conflicting ordering hints
// into one deterministic sequence of the input fields. The output is always a
// permutation of the input: rules can reorder fields but never drop,
// duplicate or invent them. Rule entries naming fields absent from the input
// are silently ignored, and an empty rule set yields the input order.
//
// Grouped fields are placed first, group by group in declared order; whatever
// remains is placed by a flat pass. Both passes share one ordering primitive:
// position in the explicit order, then descending weight, then the field's
// original position in the input. An empty activeTrait means no trait.
func ResolveFieldOrder(fields []string, rules schema.FieldOrderRules, activeTrait schema.Trait) []string {
	rules = ActiveRules(rules, activeTrait)

	// Duplicate input ids keep their first occurrence; inputPos is the
	// tie-break key of last resort everywhere below.
	inputPos := make(map[string]int, len(fields))
	remaining := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, seen := inputPos[f]; seen {
			continue
		}
		inputPos[f] = len(remaining)
		remaining = append(remaining, f)
	}

	explicitPos := make(map[string]int, len(rules.ExplicitOrder))
	for i, f := range rules.ExplicitOrder {
		if _, seen := explicitPos[f]; !seen {
			explicitPos[f] = i
		}
	}

	ordered := make([]string, 0, len(remaining))
	placed := make(map[string]struct{}, len(remaining))

	for _, group := range rules.Groups {
		subset := make([]string, 0, len(group.Fields))
		for _, f := range group.Fields {
			if _, present := inputPos[f]; !present {
				continue
			}
			if _, done := placed[f]; done {
				continue
			}
			subset = append(subset, f)
			placed[f] = struct{}{}
		}
		orderFields(subset, explicitPos, rules.PerFieldWeights, inputPos)
		ordered = append(ordered, subset...)
	}

	flat := make([]string, 0, len(remaining))
	for _, f := range remaining {
		if _, done := placed[f]; !done {
			flat = append(flat, f)
		}
	}
	orderFields(flat, explicitPos, rules.PerFieldWeights, inputPos)

	return append(ordered, flat...)
}

// ActiveRules returns the rule set resolution actually uses under a trait:
// the trait's override when one exists, otherwise the base rules. The
// substitution is one-shot: the override replaces the base wholesale and its
// own trait overrides are not consulted again.
func ActiveRules(rules schema.FieldOrderRules, activeTrait schema.Trait) schema.FieldOrderRules {
	if activeTrait == "" {
		return rules
	}
	if override, ok := rules.TraitOverrides[activeTrait]; ok {
		return override
	}
	return rules
}

// orderFields sorts fields in place by the shared ordering primitive:
// explicit position, then descending weight with unweighted fields after
// weighted ones, then original input order. The comparator is total over
// distinct fields, so the result never depends on the incoming order.
func orderFields(fields []string, explicitPos map[string]int, weights map[string]int, inputPos map[string]int) {
	sort.Slice(fields, func(i, j int) bool {
		a, b := fields[i], fields[j]

		aExp, aHasExp := explicitPos[a]
		bExp, bHasExp := explicitPos[b]
		if aHasExp || bHasExp {
			if aHasExp && bHasExp {
				return aExp < bExp
			}
			return aHasExp
		}

		aWeight, aHasWeight := weights[a]
		bWeight, bHasWeight := weights[b]
		if aHasWeight || bHasWeight {
			if aHasWeight && bHasWeight {
				if aWeight != bWeight {
					return aWeight > bWeight
				}
				return inputPos[a] < inputPos[b]
			}
			return aHasWeight
		}

		return inputPos[a] < inputPos[b]
	})
}
