package beacon

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// Comparer reports whether a subject changed between prev and cur.
type Comparer func(prev, cur any) bool

// canonical encodes structured values deterministically so that two values
// with the same shape produce identical bytes.
var canonical cbor.EncMode

func init() {
	opts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	var err error
	canonical, err = opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create canonical CBOR encoder: %v", err))
	}
}

// Differs is the default Comparer.
//
// Two primitives differ when they are not ==, so NaN always differs and values
// of different types (int and int64) differ. A typed nil map, slice, pointer,
// func or chan counts as nil. A primitive and a structured value always
// differ.
//
// Two structured values of the same type differ when they are not
// reflect.DeepEqual, which also sees unexported fields and tolerates cycles.
// Structured values of different types are compared by their canonical
// encodings, so a struct and a map with the same fields are equal. Values
// that cannot be encoded, or that contain a reference cycle, always differ
// from a value of another type.
func Differs(prev, cur any) bool {
	prev, cur = untypedNil(prev), untypedNil(cur)

	ps, cs := structured(prev), structured(cur)
	switch {
	case !ps && !cs:
		return prev != cur
	case ps != cs:
		return true
	}

	if reflect.TypeOf(prev) == reflect.TypeOf(cur) {
		return !reflect.DeepEqual(prev, cur)
	}
	if cyclic(prev) || cyclic(cur) {
		return true
	}

	pb, perr := canonical.Marshal(prev)
	cb, cerr := canonical.Marshal(cur)
	if perr != nil || cerr != nil {
		return true
	}
	return !bytes.Equal(pb, cb)
}

// structured reports whether v is compared by shape rather than by ==.
func structured(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct,
		reflect.Pointer, reflect.Func, reflect.Chan, reflect.Interface,
		reflect.UnsafePointer:
		return true
	default:
		return false
	}
}

// untypedNil turns a nil map, slice, pointer, func or chan into a plain nil.
func untypedNil(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return nil
		}
	}
	return v
}

// visit identifies a reference while walking a value graph.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

// cyclic reports whether v reaches itself through pointers, maps or slices.
// The encoder recurses without bound on such values.
func cyclic(v any) bool {
	return walk(reflect.ValueOf(v), map[visit]bool{}, map[visit]bool{})
}

// walk is a depth-first search; path holds the references on the current
// branch and done those already fully explored.
func walk(v reflect.Value, path, done map[visit]bool) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return false
		}
		k := visit{ptr: v.Pointer(), typ: v.Type()}
		if path[k] {
			return true
		}
		if done[k] {
			return false
		}
		path[k] = true
		defer func() {
			delete(path, k)
			done[k] = true
		}()
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return false
		}
		return walk(v.Elem(), path, done)
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if walk(v.Field(i), path, done) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if walk(v.Index(i), path, done) {
				return true
			}
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if walk(iter.Key(), path, done) || walk(iter.Value(), path, done) {
				return true
			}
		}
	}
	return false
}
