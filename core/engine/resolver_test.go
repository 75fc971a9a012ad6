package engine

import (
	"testing"

	"github.com/facetkit/facet/schema"
	"github.com/stretchr/testify/assert"
)

func TestResolveFieldOrderExplicitOrder(t *testing.T) {
	fields := []string{"title", "status", "priority", "notes"}
	rules := schema.FieldOrderRules{
		ExplicitOrder: []string{"title", "status", "priority"},
	}

	order := ResolveFieldOrder(fields, rules, "")

	assert.Equal(t, []string{"title", "status", "priority", "notes"}, order)
}

func TestResolveFieldOrderWeights(t *testing.T) {
	fields := []string{"title", "status", "priority", "notes"}
	rules := schema.FieldOrderRules{
		PerFieldWeights: map[string]int{"title": 10, "status": 20, "priority": 30},
	}

	order := ResolveFieldOrder(fields, rules, "")

	assert.Equal(t, []string{"priority", "status", "title", "notes"}, order)
}

func TestResolveFieldOrderExplicitBeatsWeights(t *testing.T) {
	fields := []string{"a", "b", "c", "d"}
	rules := schema.FieldOrderRules{
		ExplicitOrder:   []string{"c", "a"},
		PerFieldWeights: map[string]int{"a": 100, "b": 50, "d": 75},
	}

	order := ResolveFieldOrder(fields, rules, "")

	assert.Equal(t, []string{"c", "a", "d", "b"}, order)
}

func TestResolveFieldOrderTraitOverrideReplacesBase(t *testing.T) {
	fields := []string{"title", "status", "priority", "notes"}
	rules := schema.FieldOrderRules{
		ExplicitOrder: []string{"title", "status", "priority"},
		TraitOverrides: map[schema.Trait]schema.FieldOrderRules{
			"compact": {ExplicitOrder: []string{"title", "priority"}},
		},
	}

	// The override replaces the base rules wholesale. "status" loses its
	// explicit slot and falls back to input order behind "priority".
	order := ResolveFieldOrder(fields, rules, "compact")

	assert.Equal(t, []string{"title", "priority", "status", "notes"}, order)
}

func TestResolveFieldOrderUnknownTraitUsesBase(t *testing.T) {
	fields := []string{"title", "status", "priority", "notes"}
	rules := schema.FieldOrderRules{
		ExplicitOrder: []string{"priority", "title"},
		TraitOverrides: map[schema.Trait]schema.FieldOrderRules{
			"compact": {ExplicitOrder: []string{"title", "priority"}},
		},
	}

	assert.Equal(t,
		ResolveFieldOrder(fields, rules, ""),
		ResolveFieldOrder(fields, rules, "mobile"))
	assert.Equal(t, []string{"priority", "title", "status", "notes"},
		ResolveFieldOrder(fields, rules, "mobile"))
}

func TestResolveFieldOrderEmptyRules(t *testing.T) {
	fields := []string{"gamma", "alpha", "beta"}

	order := ResolveFieldOrder(fields, schema.FieldOrderRules{}, "")

	assert.Equal(t, fields, order)
}

func TestResolveFieldOrderEmptyFields(t *testing.T) {
	rules := schema.FieldOrderRules{ExplicitOrder: []string{"a", "b"}}

	order := ResolveFieldOrder(nil, rules, "")

	assert.Empty(t, order)
}

func TestResolveFieldOrderIgnoresUnknownRuleEntries(t *testing.T) {
	fields := []string{"title", "notes"}
	rules := schema.FieldOrderRules{
		ExplicitOrder:   []string{"ghost", "notes", "phantom", "title"},
		PerFieldWeights: map[string]int{"ghost": 999},
		Groups: []schema.FieldGroup{
			{ID: "main", Title: "Main", Fields: []string{"phantom"}},
		},
	}

	order := ResolveFieldOrder(fields, rules, "")

	assert.Equal(t, []string{"notes", "title"}, order)
}

func TestResolveFieldOrderGroupPass(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		rules  schema.FieldOrderRules
		want   []string
	}{
		{
			name:   "Groups Placed First In Declared Order",
			fields: []string{"notes", "title", "status", "priority"},
			rules: schema.FieldOrderRules{
				Groups: []schema.FieldGroup{
					{ID: "core", Title: "Core", Fields: []string{"title", "status"}},
					{ID: "extra", Title: "Extra", Fields: []string{"priority"}},
				},
			},
			want: []string{"title", "status", "priority", "notes"},
		},
		{
			name:   "Group Subset Ordered By Weights",
			fields: []string{"title", "status", "priority", "notes"},
			rules: schema.FieldOrderRules{
				PerFieldWeights: map[string]int{"status": 5, "title": 1},
				Groups: []schema.FieldGroup{
					{ID: "core", Title: "Core", Fields: []string{"title", "status"}},
				},
			},
			want: []string{"status", "title", "priority", "notes"},
		},
		{
			name:   "Group Subset Ordered By Explicit Order",
			fields: []string{"title", "status", "priority", "notes"},
			rules: schema.FieldOrderRules{
				ExplicitOrder: []string{"status", "title"},
				Groups: []schema.FieldGroup{
					{ID: "core", Title: "Core", Fields: []string{"title", "status"}},
				},
			},
			want: []string{"status", "title", "priority", "notes"},
		},
		{
			name:   "Field Claimed By First Group Only",
			fields: []string{"c", "a", "b"},
			rules: schema.FieldOrderRules{
				Groups: []schema.FieldGroup{
					{ID: "g1", Title: "One", Fields: []string{"b", "a"}},
					{ID: "g2", Title: "Two", Fields: []string{"a", "c"}},
				},
			},
			// Group subsets order by input position, so g1 yields a,b even
			// though its declared order is b,a. The second group cannot
			// reclaim a.
			want: []string{"a", "b", "c"},
		},
		{
			name:   "Ungrouped Fields Trail In Flat Pass",
			fields: []string{"z", "y", "x"},
			rules: schema.FieldOrderRules{
				PerFieldWeights: map[string]int{"x": 10},
				Groups: []schema.FieldGroup{
					{ID: "g", Title: "G", Fields: []string{"y"}},
				},
			},
			want: []string{"y", "x", "z"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveFieldOrder(tt.fields, tt.rules, ""))
		})
	}
}

func TestResolveFieldOrderWeightTies(t *testing.T) {
	fields := []string{"b", "a", "c", "d"}
	rules := schema.FieldOrderRules{
		PerFieldWeights: map[string]int{"a": 7, "b": 7, "d": 7},
	}

	// Equal weights keep input order; unweighted fields sort after weighted.
	order := ResolveFieldOrder(fields, rules, "")

	assert.Equal(t, []string{"b", "a", "d", "c"}, order)
}

func TestResolveFieldOrderDuplicateInputKeepsFirst(t *testing.T) {
	fields := []string{"title", "notes", "title", "status"}

	order := ResolveFieldOrder(fields, schema.FieldOrderRules{}, "")

	assert.Equal(t, []string{"title", "notes", "status"}, order)
}

func TestResolveFieldOrderClosure(t *testing.T) {
	fields := []string{"one", "two", "three", "four", "five"}
	rules := schema.FieldOrderRules{
		ExplicitOrder:   []string{"four", "missing", "two"},
		PerFieldWeights: map[string]int{"five": 3, "one": -2},
		Groups: []schema.FieldGroup{
			{ID: "g", Title: "G", Fields: []string{"three", "five"}},
		},
		TraitOverrides: map[schema.Trait]schema.FieldOrderRules{
			"dense": {PerFieldWeights: map[string]int{"one": 50}},
		},
	}

	for _, trait := range []schema.Trait{"", "dense", "unknown"} {
		order := ResolveFieldOrder(fields, rules, trait)

		assert.ElementsMatch(t, fields, order, "trait %q", trait)
		assert.Equal(t, order, ResolveFieldOrder(fields, rules, trait), "trait %q", trait)
	}
}

func TestResolveFieldOrderDoesNotMutateInput(t *testing.T) {
	fields := []string{"c", "a", "b"}
	rules := schema.FieldOrderRules{ExplicitOrder: []string{"a", "b", "c"}}

	_ = ResolveFieldOrder(fields, rules, "")

	assert.Equal(t, []string{"c", "a", "b"}, fields)
	assert.Equal(t, []string{"a", "b", "c"}, rules.ExplicitOrder)
}

func TestActiveRules(t *testing.T) {
	base := schema.FieldOrderRules{
		ExplicitOrder: []string{"a"},
		TraitOverrides: map[schema.Trait]schema.FieldOrderRules{
			"compact": {ExplicitOrder: []string{"b"}},
		},
	}

	assert.Equal(t, []string{"a"}, ActiveRules(base, "").ExplicitOrder)
	assert.Equal(t, []string{"a"}, ActiveRules(base, "detailed").ExplicitOrder)
	assert.Equal(t, []string{"b"}, ActiveRules(base, "compact").ExplicitOrder)
}

func BenchmarkResolveFieldOrderFlat(b *testing.B) {
	fields := make([]string, 64)
	weights := make(map[string]int, 32)
	for i := range fields {
		fields[i] = string(rune('a'+i%26)) + string(rune('0'+i/26))
		if i%2 == 0 {
			weights[fields[i]] = i
		}
	}
	rules := schema.FieldOrderRules{PerFieldWeights: weights}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ResolveFieldOrder(fields, rules, "")
	}
}

func BenchmarkResolveFieldOrderGrouped(b *testing.B) {
	fields := make([]string, 64)
	for i := range fields {
		fields[i] = string(rune('a'+i%26)) + string(rune('0'+i/26))
	}
	rules := schema.FieldOrderRules{
		ExplicitOrder: fields[:16],
		Groups: []schema.FieldGroup{
			{ID: "g1", Title: "One", Fields: fields[8:24]},
			{ID: "g2", Title: "Two", Fields: fields[24:48]},
		},
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ResolveFieldOrder(fields, rules, "")
	}
}
