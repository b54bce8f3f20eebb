package dbg

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type thing struct{ n int }
	a, b := &thing{1}, &thing{2}

	nameA := Name(a)
	assert.NotEmpty(t, nameA)
	assert.Equal(t, nameA, Name(a), "names are stable for the same pointer")
	assert.NotEqual(t, nameA, Name(b))

	var missing *thing
	assert.Equal(t, "Ø", Name(missing))
	assert.Equal(t, "Ø", Name(nil))
}

func TestNameDoesNotRetainPointers(t *testing.T) {
	type thing struct{ n int }
	p := &thing{3}
	name := Name(p)

	memoMu.Lock()
	defer memoMu.Unlock()
	assert.Equal(t, name, memo[reflect.ValueOf(p).Pointer()])
	for key := range memo {
		_, isThing := key.(*thing)
		assert.False(t, isThing, "memo should be keyed by address, not by pointer")
	}
}
