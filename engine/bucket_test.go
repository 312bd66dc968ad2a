package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketArray_InsertTakeNonEmpty(t *testing.T) {
	b := newBucketArray(2)
	arenaDist := []float32{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}

	assert.False(t, b.nonEmpty(0))
	b.insert(0, 7, 1)
	b.insert(0, 9, 1)
	assert.True(t, b.nonEmpty(0))

	contents := b.take(0, arenaDist)
	assert.ElementsMatch(t, []int32{7, 9}, contents)
	assert.False(t, b.nonEmpty(0))
}

func TestBucketArray_IndexForClampsToCursor(t *testing.T) {
	b := newBucketArray(2)
	b.cursor = 3

	// floor(5/2) = 2, below the cursor, so it clamps up to 3 (§9).
	assert.Equal(t, 3, b.indexFor(5))
	// floor(10/2) = 5, above the cursor, passes through unchanged.
	assert.Equal(t, 5, b.indexFor(10))
}

func TestBucketArray_NextNonEmpty(t *testing.T) {
	b := newBucketArray(1)
	b.insert(4, 1, 0)

	next, ok := b.nextNonEmpty(0)
	assert.True(t, ok)
	assert.Equal(t, 4, next)

	_, ok = b.nextNonEmpty(5)
	assert.False(t, ok)
}

func TestBucketArray_TakeOnUnallocatedIndex(t *testing.T) {
	b := newBucketArray(1)
	assert.Nil(t, b.take(10, nil))
	assert.False(t, b.nonEmpty(10))
}

// TestBucketArray_TakeFiltersStaleEntries reproduces the shape of the bug a
// stale bucket entry must guard against: a vertex is first inserted with a
// poor distance estimate, then a later relaxation gives it a better
// distance and re-inserts it into a different bucket. Once arena.Dist has
// moved on, the original bucket must not hand the vertex back out again.
func TestBucketArray_TakeFiltersStaleEntries(t *testing.T) {
	b := newBucketArray(1)
	arenaDist := []float32{0, 2.8}

	b.insert(3, 1, 3.5) // early, poor estimate
	b.insert(2, 1, 2.8) // later, correct estimate
	arenaDist[1] = 2.8

	live := b.take(2, arenaDist)
	assert.ElementsMatch(t, []int32{1}, live)

	stale := b.take(3, arenaDist)
	assert.Empty(t, stale)
}
