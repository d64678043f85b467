package apb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriStateEq(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		a    TriState[bool]
		b    TriState[bool]
		eq   bool
	}){
		{"known_equal", Known(true), Known(true), true},
		{"known_differ", Known(true), Known(false), false},
		{"both_unknown", Unknown[bool](), Unknown[bool](), true},
		{"unknown_to_known", Unknown[bool](), Known(false), false},
		{"known_to_unknown", Known(false), Unknown[bool](), false},
	}

	for _, entry := range table {
		assert.Equal(entry.eq, entry.a.Eq(entry.b), entry.name)
		assert.Equal(entry.eq, entry.b.Eq(entry.a), entry.name)
	}
}

func TestTriStateAccess(t *testing.T) {
	assert := assert.New(t)

	known := Known[uint64](0x10)
	value, ok := known.Get()
	assert.True(ok)
	assert.Equal(uint64(0x10), value)
	assert.False(known.IsUnknown())
	assert.True(known.Is(0x10))
	assert.False(known.Is(0x20))
	assert.Equal("16", known.String())

	unknown := Unknown[uint64]()
	_, ok = unknown.Get()
	assert.False(ok)
	assert.True(unknown.IsUnknown())
	assert.False(unknown.Is(0))
	assert.Equal("x", unknown.String())

	// The zero value is unknown.
	var zero TriState[bool]
	assert.True(zero.IsUnknown())
}
