package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToQuery_OmitsEmptyFacets(t *testing.T) {
	f := FilterState{Type: "theft", Severity: "", Status: "resolved", Precinct: ""}

	params := f.ToQuery()

	assert.Equal(t, []QueryParam{
		{Key: "type", Value: "theft"},
		{Key: "status", Value: "resolved"},
	}, params)
}

func TestToQuery_FixedOrder(t *testing.T) {
	f := FilterState{Precinct: "North", Status: "closed", Severity: "high", Type: "fraud"}

	params := f.ToQuery()

	keys := make([]string, 0, len(params))
	for _, p := range params {
		keys = append(keys, p.Key)
		assert.NotEmpty(t, p.Value)
	}
	assert.Equal(t, []string{"type", "severity", "status", "precinct"}, keys)
}

func TestToQuery_EmptyFilter(t *testing.T) {
	var f FilterState

	assert.Empty(t, f.ToQuery())
	assert.True(t, f.IsEmpty())
}

func TestToQuery_NoEmptyValuesForAnyCombination(t *testing.T) {
	values := []string{"", "x"}
	for _, ty := range values {
		for _, sev := range values {
			for _, st := range values {
				for _, pr := range values {
					f := FilterState{Type: ty, Severity: sev, Status: st, Precinct: pr}
					params := f.ToQuery()

					present := map[string]bool{}
					for _, p := range params {
						assert.NotEmpty(t, p.Value)
						present[p.Key] = true
					}
					for _, name := range FilterFields {
						assert.Equal(t, f.Get(name) != "", present[name], "field %s of %+v", name, f)
					}
				}
			}
		}
	}
}

func TestWithField_ReplacesOneField(t *testing.T) {
	f := FilterState{Type: "theft", Severity: "low"}

	next := f.WithField(FieldStatus, "on_scene")

	assert.Equal(t, FilterState{Type: "theft", Severity: "low", Status: "on_scene"}, next)
	// исходный снимок не меняется
	assert.Equal(t, FilterState{Type: "theft", Severity: "low"}, f)
}

func TestWithField_ClearsWithEmptyValue(t *testing.T) {
	f := FilterState{Type: "theft", Precinct: "Central"}

	next := f.WithField(FieldPrecinct, "")

	assert.Equal(t, FilterState{Type: "theft"}, next)
}

func TestWithField_UnknownFieldIgnored(t *testing.T) {
	f := FilterState{Type: "theft"}

	assert.Equal(t, f, f.WithField("district", "7"))
}

func TestWithField_AcceptsAnyValue(t *testing.T) {
	f := FilterState{}.WithField(FieldSeverity, "not-a-severity")

	assert.Equal(t, "not-a-severity", f.Severity)
	assert.Equal(t, []QueryParam{{Key: FieldSeverity, Value: "not-a-severity"}}, f.ToQuery())
}

func TestFacets_AllOptionFirst(t *testing.T) {
	facets := Facets()

	assert.Len(t, facets, 4)
	for i, facet := range facets {
		assert.Equal(t, FilterFields[i], facet.Name)
		assert.Equal(t, "", facet.Options[0].Value)
		assert.Contains(t, facet.Options[0].Label, "All")
	}
	assert.Len(t, facets[0].Options, len(IncidentTypes)+1)
	assert.Equal(t, "on_scene", facets[2].Options[3].Value)
}
