package schema

import "maps"

// FieldOrderRules is the declarative ordering description a caller supplies
// to the resolver. All parts are optional; an empty value is a no-op rule set
// and resolution degrades to the input order.
type FieldOrderRules struct {
	// ExplicitOrder is an optional total or partial ordering of field ids.
	ExplicitOrder []string `json:"explicit_order,omitempty" mapstructure:"explicit_order"`

	// PerFieldWeights maps field ids to weights; higher weight sorts earlier.
	PerFieldWeights map[string]int `json:"per_field_weights,omitempty" mapstructure:"per_field_weights"`

	// Groups are ordered clusters of fields placed before ungrouped fields.
	Groups []FieldGroup `json:"groups,omitempty" mapstructure:"groups"`

	// TraitOverrides swaps in a complete replacement rule set per trait.
	// An active override replaces the base rules wholesale; it is never merged.
	TraitOverrides map[Trait]FieldOrderRules `json:"trait_overrides,omitempty" mapstructure:"trait_overrides"`
}

// FieldGroup is a named, ordered cluster of field identifiers that should be
// placed together before ungrouped fields are considered.
type FieldGroup struct {
	ID     string   `json:"id" mapstructure:"id"`
	Title  string   `json:"title,omitempty" mapstructure:"title"`
	Fields []string `json:"fields" mapstructure:"fields"`
}

// Empty reports whether the rule set carries no ordering information at all.
func (r FieldOrderRules) Empty() bool {
	return len(r.ExplicitOrder) == 0 && len(r.PerFieldWeights) == 0 &&
		len(r.Groups) == 0 && len(r.TraitOverrides) == 0
}

// Clone creates a deep copy of the rule set so that callers and trait
// substitution never alias the receiver's maps or slices.
func (r FieldOrderRules) Clone() FieldOrderRules {
	clone := r
	if r.ExplicitOrder != nil {
		clone.ExplicitOrder = make([]string, len(r.ExplicitOrder))
		copy(clone.ExplicitOrder, r.ExplicitOrder)
	}
	if r.PerFieldWeights != nil {
		clone.PerFieldWeights = make(map[string]int, len(r.PerFieldWeights))
		maps.Copy(clone.PerFieldWeights, r.PerFieldWeights)
	}
	if r.Groups != nil {
		clone.Groups = make([]FieldGroup, len(r.Groups))
		for i, g := range r.Groups {
			cg := g
			if g.Fields != nil {
				cg.Fields = make([]string, len(g.Fields))
				copy(cg.Fields, g.Fields)
			}
			clone.Groups[i] = cg
		}
	}
	if r.TraitOverrides != nil {
		clone.TraitOverrides = make(map[Trait]FieldOrderRules, len(r.TraitOverrides))
		for trait, override := range r.TraitOverrides {
			clone.TraitOverrides[trait] = override.Clone()
		}
	}
	return clone
}

// FieldOrderDecision is the CLI-facing outcome of one resolution: the input
// field set, the trait that was active, the resolved order, and which group
// placed each grouped field (display metadata only).
type FieldOrderDecision struct {
	Fields  []string          `json:"fields"`
	Trait   Trait             `json:"trait,omitempty"`
	Order   []string          `json:"order"`
	GroupOf map[string]string `json:"group_of,omitempty"`
}
