package bracket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentlab/sented/domain"
)

func TestParse_LabeledForm(t *testing.T) {
	n, err := Parse("(S (NP (DT the) (NN cat)) (VP (VBZ sat)))")
	require.NoError(t, err)

	assert.Equal(t, "S", n.Label)
	require.Len(t, n.Children, 2)
	assert.Equal(t, "NP", n.Children[0].Label)
	assert.Equal(t, "VP", n.Children[1].Label)
	assert.Equal(t, []string{"the", "cat", "sat"}, n.Leaves())
	assert.Equal(t, 9, n.Size())
}

func TestParse_SkeletonForm(t *testing.T) {
	// The skeleton of the sentence above: labels stripped, braces.
	n, err := Parse("{{{the}{cat}}{{sat}}}")
	require.NoError(t, err)

	assert.Equal(t, "", n.Label, "skeleton nodes carry no label")
	require.Len(t, n.Children, 2)
	assert.Equal(t, []string{"the", "cat", "sat"}, n.Leaves())
}

func TestParse_SkeletonWithLeadingLabel(t *testing.T) {
	n, err := Parse("{S{a}{b}}")
	require.NoError(t, err)
	assert.Equal(t, "S", n.Label)
	require.Len(t, n.Children, 2)
}

func TestParse_BareToken(t *testing.T) {
	// A fully collapsed skeleton degenerates to a single token.
	n, err := Parse("thecatsat")
	require.NoError(t, err)
	assert.True(t, n.IsLeaf())
	assert.Equal(t, "thecatsat", n.Label)
}

func TestParse_ExtraWhitespace(t *testing.T) {
	n, err := Parse("  (S   (NP (DT the)\n\t(NN cat))  (VP (VBZ sat)))  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"the", "cat", "sat"}, n.Leaves())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "unbalanced open", input: "(S (NP"},
		{name: "unbalanced close", input: "(S))"},
		{name: "mixed delimiters", input: "(S a}"},
		{name: "missing label after paren", input: "((NP the))"},
		{name: "bare multi token", input: "the cat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, domain.IsFormatError(err), "expected a format error, got %v", err)
		})
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	tests := []string{
		"(S (NP (DT the) (NN cat)) (VP (VBZ sat)))",
		"(S a b)",
		"(ROOT (X y))",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			n, err := Parse(input)
			require.NoError(t, err)
			assert.Equal(t, input, Serialize(n))
		})
	}
}

func TestSerialize_Leaf(t *testing.T) {
	n, err := Parse("cat")
	require.NoError(t, err)
	assert.Equal(t, "cat", Serialize(n))
}
