package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_RemovesDuplicatesAcrossChunks(t *testing.T) {
	merged := Merge([]Result{
		{Companies: []string{"x", "y"}},
		{Companies: []string{"y", "z"}},
	})

	assert.Equal(t, []string{"x", "y", "z"}, merged.Companies)
}

func TestMerge_CaseInsensitiveKeepsFirstOccurrence(t *testing.T) {
	merged := Merge([]Result{
		{Persons: []string{"Ana ", "Luis"}},
		{Persons: []string{"ana", " LUIS "}},
	})

	assert.Equal(t, []string{"Ana", "Luis"}, merged.Persons)
}

func TestMerge_PreservesFirstSeenOrder(t *testing.T) {
	merged := Merge([]Result{
		{Events: []string{"resolution issued", "public hearing"}},
		{Events: []string{"appeal filed", "resolution issued"}},
	})

	assert.Equal(t,
		[]string{"resolution issued", "public hearing", "appeal filed"},
		merged.Events)
}

func TestMerge_Idempotent(t *testing.T) {
	first := Merge([]Result{
		{
			Companies: []string{"Acme", "acme ", "Umbrella"},
			Persons:   []string{"Ana García"},
			Events:    []string{"merger announced"},
		},
	})

	second := Merge([]Result{first})
	assert.Equal(t, first, second)
}

func TestMerge_DropsEmptyEntries(t *testing.T) {
	merged := Merge([]Result{
		{Companies: []string{"", "  ", "Acme"}},
	})

	assert.Equal(t, []string{"Acme"}, merged.Companies)
}

func TestMerge_EmptyInput(t *testing.T) {
	merged := Merge(nil)
	assert.True(t, merged.Empty())

	merged = Merge([]Result{{}, {}})
	assert.True(t, merged.Empty())
}
