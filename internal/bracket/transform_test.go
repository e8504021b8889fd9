package bracket

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sentlab/sented/domain"
)

const catSentence = "(S (NP (DT the) (NN cat)) (VP (VBZ sat)))"

func TestStripLabels(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "full sentence",
			input:    catSentence,
			expected: "{{{the}{cat}}{{sat}}}",
		},
		{
			name:     "dollar category",
			input:    "(NP (WP$ whose) (NN cat))",
			expected: "{{whose}{cat}}",
		},
		{
			name:     "collapsed render",
			input:    "(S the cat sat)",
			expected: "{thecatsat}",
		},
		{
			name:     "whitespace collapsed",
			input:    "(S  (NP the)\n (VP sat))",
			expected: "{{the}{sat}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripLabels(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, StripLabels(got), "stripping should be idempotent")
		})
	}
}

func TestCollapseBeyondDepth_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		depth    int
		expected string
	}{
		{
			name:     "depth zero keeps only the root",
			input:    "(S (NP (DT a)) (VP (V b)))",
			depth:    0,
			expected: "(S a b)",
		},
		{
			name:     "depth one keeps the first level",
			input:    catSentence,
			depth:    1,
			expected: "(S (NP the cat) (VP sat))",
		},
		{
			name:     "depth beyond height is a no-op",
			input:    catSentence,
			depth:    10,
			expected: catSentence,
		},
		{
			name:     "leaf is untouched",
			input:    "cat",
			depth:    0,
			expected: "cat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.input)
			require.NoError(t, err)

			collapsed := CollapseBeyondDepth(n, tt.depth)
			assert.Equal(t, tt.expected, Serialize(collapsed))
		})
	}
}

func TestCollapseBeyondDepth_DoesNotModifyInput(t *testing.T) {
	n, err := Parse(catSentence)
	require.NoError(t, err)

	_ = CollapseBeyondDepth(n, 0)
	assert.Equal(t, catSentence, Serialize(n))
}

func TestCollapseBeyondDepth_Idempotent(t *testing.T) {
	n, err := Parse(catSentence)
	require.NoError(t, err)

	once := CollapseBeyondDepth(n, 1)
	twice := CollapseBeyondDepth(once, 1)
	assert.Equal(t, Serialize(once), Serialize(twice))
}

func TestDepthLimitedString(t *testing.T) {
	n, err := Parse(catSentence)
	require.NoError(t, err)

	assert.Equal(t, catSentence, DepthLimitedString(n, domain.FullDepth()))
	assert.Equal(t, "(S the cat sat)", DepthLimitedString(n, domain.LimitedDepth(0)))
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		depth    domain.Depth
		expected string
	}{
		{
			name:     "full depth",
			input:    catSentence,
			depth:    domain.FullDepth(),
			expected: "{{{the}{cat}}{{sat}}}",
		},
		{
			name:     "depth zero collapses to a flat skeleton",
			input:    catSentence,
			depth:    domain.LimitedDepth(0),
			expected: "{thecatsat}",
		},
		{
			name:     "depth one",
			input:    catSentence,
			depth:    domain.LimitedDepth(1),
			expected: "{{thecat}{sat}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonicalize(tt.input, tt.depth)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCanonicalize_MalformedInput(t *testing.T) {
	_, err := Canonicalize("(S (NP", domain.FullDepth())
	require.Error(t, err)
	assert.True(t, domain.IsFormatError(err))
}
