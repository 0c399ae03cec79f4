package neodb_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/neodb"
)

func countingSeq(n int, produced *int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range n {
			*produced++
			if !yield(i) {
				return
			}
		}
	}
}

func TestLimit(t *testing.T) {
	t.Run("caps the stream", func(t *testing.T) {
		var produced int
		got := slices.Collect(neodb.Limit(countingSeq(10, &produced), 3))

		assert.Equal(t, []int{0, 1, 2}, got)
		assert.Equal(t, 3, produced, "producer must stop at the limit")
	})

	t.Run("non-positive passes through", func(t *testing.T) {
		var produced int
		got := slices.Collect(neodb.Limit(countingSeq(4, &produced), 0))
		assert.Equal(t, []int{0, 1, 2, 3}, got)

		got = slices.Collect(neodb.Limit(countingSeq(4, &produced), -5))
		assert.Equal(t, []int{0, 1, 2, 3}, got)
	})

	t.Run("limit beyond stream", func(t *testing.T) {
		var produced int
		got := slices.Collect(neodb.Limit(countingSeq(2, &produced), 10))
		assert.Equal(t, []int{0, 1}, got)
	})

	t.Run("consumer break propagates", func(t *testing.T) {
		var produced int
		for v := range neodb.Limit(countingSeq(100, &produced), 50) {
			if v == 5 {
				break
			}
		}
		assert.Equal(t, 6, produced)
	})
}
