package frequency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textsum/internal/stopwords"
)

func TestBuildCountsAcrossSentences(t *testing.T) {
	sentences := []string{
		"Cats are great pets.",
		"Dogs are loyal animals.",
		"Cats sleep most of the day.",
		"Loyal dogs protect the house.",
	}
	table := Build(sentences, DefaultOptions())

	want := Table{
		"cats": 2, "great": 1, "pets": 1, "dogs": 2, "loyal": 2, "animals": 1,
		"sleep": 1, "day": 1, "protect": 1, "house": 1,
	}
	assert.Equal(t, want, table)
	assert.Equal(t, 0, table.Weight("the"))
	assert.Equal(t, 0, table.Weight("are"))
	assert.Equal(t, 0, table.Weight("most"))
}

func TestBuildSkipsShortTokensAndStopwords(t *testing.T) {
	table := Build([]string{"to a of in", "I x y z"}, DefaultOptions())
	assert.True(t, table.Empty())
}

func TestBuildHonoursOptions(t *testing.T) {
	opts := Options{Stopwords: stopwords.Default().With("cats"), MinTokenLength: 4}
	table := Build([]string{"Cats and dogs run far, farther."}, opts)
	assert.Equal(t, Table{"dogs": 1, "farther": 1}, table)
}

func TestBuildZeroOptionsUsesDefaultLength(t *testing.T) {
	table := Build([]string{"x ab"}, Options{})
	assert.Equal(t, Table{"ab": 1}, table)
}

func TestTop(t *testing.T) {
	table := Table{"beta": 2, "alpha": 2, "gamma": 5, "delta": 1}

	top := table.Top(3)
	require.Len(t, top, 3)
	assert.Equal(t, []Term{{"gamma", 5}, {"alpha", 2}, {"beta", 2}}, top)

	assert.Len(t, table.Top(10), 4)
	assert.Len(t, table.Top(-1), 4)
	assert.Empty(t, Table{}.Top(3))
}
