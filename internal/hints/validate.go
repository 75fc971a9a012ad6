package hints

import (
	"fmt"

	"github.com/facetkit/facet/schema"
)

// FindingCode identifies one class of structural problem in a rule set.
type FindingCode string

// All lint finding codes.
const (
	DuplicateExplicitEntry FindingCode = "duplicate-explicit-entry"
	NonPositiveWeight      FindingCode = "non-positive-weight"
	DuplicateGroupID       FindingCode = "duplicate-group-id"
	EmptyGroupID           FindingCode = "empty-group-id"
	EmptyGroup             FindingCode = "empty-group"
	EmptyTraitOverride     FindingCode = "empty-trait-override"
	UnknownField           FindingCode = "unknown-field"
)

// Finding is one structural problem found in a rule set. Findings never fail
// resolution; they exist for the check command and CI.
type Finding struct {
	Code   FindingCode `json:"code"`
	Detail string      `json:"detail"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.Code, f.Detail)
}

// Validate lints a rule set for structural problems. When fields is non-empty
// it also reports rule entries naming fields absent from that set. Trait
// overrides are linted one level deep, matching the resolver's one-shot
// substitution.
func Validate(rules schema.FieldOrderRules, fields []string) []Finding {
	findings := lintRules(rules, fields, "")

	for trait, override := range rules.TraitOverrides {
		prefix := fmt.Sprintf("trait %q: ", trait)
		if override.Empty() {
			findings = append(findings, Finding{
				Code:   EmptyTraitOverride,
				Detail: fmt.Sprintf("trait %q override carries no ordering information", trait),
			})
			continue
		}
		findings = append(findings, lintRules(override, fields, prefix)...)
	}

	return findings
}

// lintRules checks one rule set level; prefix marks findings from overrides.
func lintRules(rules schema.FieldOrderRules, fields []string, prefix string) []Finding {
	var findings []Finding

	known := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		known[f] = struct{}{}
	}
	checkKnown := func(field, where string) {
		if len(known) == 0 {
			return
		}
		if _, ok := known[field]; !ok {
			findings = append(findings, Finding{
				Code:   UnknownField,
				Detail: fmt.Sprintf("%s%s names field %q absent from the field set", prefix, where, field),
			})
		}
	}

	seenExplicit := make(map[string]struct{}, len(rules.ExplicitOrder))
	for _, field := range rules.ExplicitOrder {
		if _, dup := seenExplicit[field]; dup {
			findings = append(findings, Finding{
				Code:   DuplicateExplicitEntry,
				Detail: fmt.Sprintf("%sexplicit order lists %q more than once", prefix, field),
			})
		}
		seenExplicit[field] = struct{}{}
		checkKnown(field, "explicit order")
	}

	for field, weight := range rules.PerFieldWeights {
		if weight <= 0 {
			findings = append(findings, Finding{
				Code:   NonPositiveWeight,
				Detail: fmt.Sprintf("%sweight for %q is %d; weights must be positive", prefix, field, weight),
			})
		}
		checkKnown(field, "weights")
	}

	seenGroups := make(map[string]struct{}, len(rules.Groups))
	for _, group := range rules.Groups {
		if group.ID == "" {
			findings = append(findings, Finding{
				Code:   EmptyGroupID,
				Detail: prefix + "a group has no id",
			})
		} else {
			if _, dup := seenGroups[group.ID]; dup {
				findings = append(findings, Finding{
					Code:   DuplicateGroupID,
					Detail: fmt.Sprintf("%sgroup id %q is declared more than once", prefix, group.ID),
				})
			}
			seenGroups[group.ID] = struct{}{}
		}

		if len(group.Fields) == 0 {
			findings = append(findings, Finding{
				Code:   EmptyGroup,
				Detail: fmt.Sprintf("%sgroup %q has no fields", prefix, group.ID),
			})
		}
		for _, field := range group.Fields {
			checkKnown(field, fmt.Sprintf("group %q", group.ID))
		}
	}

	return findings
}
