package logfacade

import (
	"fmt"
	"reflect"
	"strings"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// maxDumpElements limits how many slice/array elements are rendered.
const maxDumpElements = 10

// Dump logs the contents of v at Debug level as a single entry, one line
// per field or element. Structs show their exported fields; maps and
// slices show their elements. Nothing is rendered when Debug is disabled
// for the caller.
func (f *Facade) Dump(v any) {
	f.emit(call{level: DebugLevel, message: func() (string, error) {
		return renderDump(v), nil
	}})
}

func renderDump(v any) string {
	var d dumper
	d.onPath = make(map[pathKey]bool)
	if v == nil {
		d.line("Dump: <nil>")
	} else {
		d.value(v, emptyString, 0)
	}
	return strings.TrimSuffix(d.b.String(), "\n")
}

type dumper struct {
	b strings.Builder
	// onPath holds the pointers, slices and maps being rendered by the
	// current call chain. A value met again on its own path is a cycle;
	// one reached twice through siblings is rendered twice.
	onPath map[pathKey]bool
}

type pathKey struct {
	ptr  uintptr
	kind reflect.Kind
}

// enter marks val as being rendered. It reports false, after writing a
// marker line, when val is already on the current path. The returned func
// must be called once val is done.
func (d *dumper) enter(val reflect.Value, prefix string) (func(), bool) {
	key := pathKey{ptr: val.Pointer(), kind: val.Kind()}
	if key.ptr == 0 {
		return func() {}, true
	}
	if d.onPath[key] {
		d.line("%s: <circular reference>", prefix)
		return nil, false
	}
	d.onPath[key] = true
	return func() { delete(d.onPath, key) }, true
}

func (d *dumper) line(format string, args ...any) {
	fmt.Fprintf(&d.b, format, args...)
	d.b.WriteByte('\n')
}

func (d *dumper) value(v any, prefix string, depth int) {
	if depth > maxDumpDepth {
		d.line("%s: <max depth reached>", prefix)
		return
	}
	if v == nil {
		d.line("%s: <nil>", prefix)
		return
	}

	val := reflect.ValueOf(v)

	// Unwrap interfaces and pointers with cycle detection.
	for {
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				d.line("%s: <nil>", prefix)
				return
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				d.line("%s: <nil>", prefix)
				return
			}
			leave, ok := d.enter(val, prefix)
			if !ok {
				return
			}
			defer leave()
			val = val.Elem()
		default:
		}
		break
	}

	typ := val.Type()
	if k := val.Kind(); (k == reflect.Map || k == reflect.Slice) && val.Len() > 0 {
		leave, ok := d.enter(val, prefix)
		if !ok {
			return
		}
		defer leave()
	}

	switch val.Kind() {
	case reflect.Struct:
		if prefix == emptyString {
			d.line("Struct: %s", typ.Name())
		} else {
			d.line("%s: %s {", prefix, typ.Name())
		}
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			fieldVal := val.Field(i)
			if !fieldVal.CanInterface() {
				continue
			}
			name := field.Name
			if prefix != emptyString {
				name = prefix + "." + field.Name
			}
			d.value(fieldVal.Interface(), name, depth+1)
		}
		if prefix != emptyString {
			d.line("%s: }", prefix)
		}

	case reflect.Map:
		d.line("%s: map[%s]%s (len: %d) {", prefix, typ.Key().String(), typ.Elem().String(), val.Len())
		iter := val.MapRange()
		for iter.Next() {
			key := fmt.Sprintf("%v", iter.Key().Interface())
			d.value(iter.Value().Interface(), prefix+"["+key+"]", depth+1)
		}
		d.line("%s: }", prefix)

	case reflect.Slice, reflect.Array:
		d.line("%s: %s (len: %d, cap: %d) {", prefix, typ.String(), val.Len(), val.Cap())
		for i := 0; i < val.Len() && i < maxDumpElements; i++ {
			elem := val.Index(i)
			name := fmt.Sprintf("%s[%d]", prefix, i)
			if elem.CanInterface() {
				d.value(elem.Interface(), name, depth+1)
			} else {
				d.value(reflect.New(elem.Type()).Elem().Interface(), name, depth+1)
			}
		}
		if val.Len() > maxDumpElements {
			d.line("%s: ... (%d more elements)", prefix, val.Len()-maxDumpElements)
		}
		d.line("%s: }", prefix)

	default:
		if val.IsValid() && val.CanInterface() {
			d.line("%s: %v", prefix, val.Interface())
		} else {
			d.line("%s: %v", prefix, v)
		}
	}
}
