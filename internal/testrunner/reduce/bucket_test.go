package reduce

import (
	"testing"

	"github.com/orizon-lang/orizon-reduce/internal/testrunner/assert"
)

func TestBucketizeTable(t *testing.T) {
	cases := []struct {
		raw  byte
		want byte
	}{
		{0, 0}, {1, 1}, {2, 2}, {3, 3},
		{4, 4}, {7, 4},
		{8, 8}, {15, 8},
		{16, 16}, {31, 16},
		{32, 32}, {127, 32},
		{128, 128}, {255, 128},
	}

	for _, c := range cases {
		trace := []byte{c.raw}
		Bucketize(trace)
		assert.Equal(t, trace[0], c.want)
	}
}

func TestBucketizeIdempotent(t *testing.T) {
	trace := []byte{0, 1, 2, 3, 7, 15, 31, 127, 255, 9}
	once := append([]byte(nil), trace...)
	Bucketize(once)

	twice := append([]byte(nil), once...)
	Bucketize(twice)

	assert.Equal(t, string(once), string(twice))
}

func TestBucketizeOddLength(t *testing.T) {
	trace := []byte{3, 9, 200}
	Bucketize(trace)
	assert.Equal(t, trace[0], byte(3))
	assert.Equal(t, trace[1], byte(8))
	assert.Equal(t, trace[2], byte(128))
}

func TestSimplify(t *testing.T) {
	trace := []byte{0, 1, 2, 255, 0, 128}
	Simplify(trace)
	assert.Equal(t, string(trace), string([]byte{1, 128, 128, 128, 1, 128}))
}

func TestSimplifyIdempotent(t *testing.T) {
	trace := []byte{0, 5, 9, 0, 255}
	once := append([]byte(nil), trace...)
	Simplify(once)

	twice := append([]byte(nil), once...)
	Simplify(twice)

	assert.Equal(t, string(once), string(twice))
}
