package engine

import (
	"testing"

	"github.com/specialistvlad/mailassembler/internal/attributes"
	"github.com/stretchr/testify/assert"
)

func TestSelection_Evaluate(t *testing.T) {
	t.Parallel()

	sel := Selection{Header: "track", Value: "tech"}

	match := attributes.NewRecord()
	match.Set("full name", "Ann")
	match.Set("Track", " Tech ")

	other := attributes.NewRecord()
	other.Set("full name", "Bob")
	other.Set("track", "Art")

	missing := attributes.NewRecord()
	missing.Set("full name", "Cy")

	outcome, value := sel.Evaluate(match)
	assert.Equal(t, Selected, outcome)
	assert.Equal(t, " Tech ", value)

	outcome, value = sel.Evaluate(other)
	assert.Equal(t, Mismatch, outcome)
	assert.Equal(t, "Art", value)

	outcome, _ = sel.Evaluate(missing)
	assert.Equal(t, MissingHeader, outcome)
}

func TestSelection_EmptyExpectedValue(t *testing.T) {
	t.Parallel()

	sel := Selection{Header: "badge", Value: ""}

	blank := attributes.NewRecord()
	blank.Set("badge", "  ")
	outcome, _ := sel.Evaluate(blank)
	assert.Equal(t, Selected, outcome)

	set := attributes.NewRecord()
	set.Set("badge", "VIP")
	outcome, _ = sel.Evaluate(set)
	assert.Equal(t, Mismatch, outcome)
}
