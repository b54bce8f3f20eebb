package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts pointers (polygons, mostly) into random readable names, so that
// trace output from several polygons can be told apart at a glance. Pointers are
// remembered by address only, so naming an object doesn't keep it alive. Once it
// is collected, a new object at the same address inherits its name.

var (
	memo   = make(map[interface{}]string)
	memoMu sync.Mutex
)

func init() {
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to the
	// same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	key := obj
	if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "Ø"
		}
		key = v.Pointer()
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}
