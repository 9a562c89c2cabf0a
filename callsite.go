package logfacade

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"strconv"
	"strings"
)

// maxStackDepth bounds how many frames are captured per call.
const maxStackDepth = 64

// facadePkg is the import path of this package. Frames from its non-test
// files form the façade's own call chain and are never reported as callers.
var facadePkg = reflect.TypeOf((*Facade)(nil)).Elem().PkgPath()

var errStackExhausted = errors.New("call site: stack exhausted")

// CallSite identifies the application code that issued a log call.
type CallSite struct {
	// Package is the import path of the caller (the "assembly").
	Package string
	// Type is the receiver type name, or the package name for plain functions.
	Type string
	// Function is the method or function name; closures fold into their parent.
	Function string
	File     string
	Line     int
	// ExtraFrames counts wrapper frames walked past to reach the caller.
	ExtraFrames int
}

// wrapperMatcher reports whether a frame belongs to a logging indirection
// that should be walked past.
type wrapperMatcher func(site CallSite, function string) bool

// resolveCallSite returns the first frame outside the façade, skipping
// offset further frames for callers that wrap the façade themselves.
// Frames matched by isWrapper are walked past one at a time.
func resolveCallSite(offset int, isWrapper wrapperMatcher) (CallSite, error) {
	var pcs [maxStackDepth]uintptr
	// 0 = runtime.Callers, 1 = resolveCallSite
	n := runtime.Callers(2, pcs[:])
	if n == 0 {
		return CallSite{}, errStackExhausted
	}
	frames := runtime.CallersFrames(pcs[:n])

	inFacade := true
	for {
		frame, more := frames.Next()
		if frame.Function == emptyString {
			if !more {
				return CallSite{}, errStackExhausted
			}
			continue
		}
		if inFacade && isFacadeFrame(frame) {
			if !more {
				return CallSite{}, errStackExhausted
			}
			continue
		}
		inFacade = false
		if offset > 0 {
			offset--
			if !more {
				return CallSite{}, fmt.Errorf("%w: stack frame offset exceeds stack depth", errStackExhausted)
			}
			continue
		}

		site := parseFunction(frame.Function)
		site.File = frame.File
		site.Line = frame.Line
		if isWrapper == nil || !isWrapper(site, frame.Function) {
			return site, nil
		}
		// Walk outward past the wrapper, keeping count.
		extra := 0
		for isWrapper(site, frame.Function) {
			if !more {
				return CallSite{}, fmt.Errorf("%w after %d extra frames", errStackExhausted, extra)
			}
			frame, more = frames.Next()
			extra++
			site = parseFunction(frame.Function)
			site.File = frame.File
			site.Line = frame.Line
		}
		site.ExtraFrames = extra
		return site, nil
	}
}

func isFacadeFrame(frame runtime.Frame) bool {
	if strings.HasSuffix(frame.File, "_test.go") {
		return false
	}
	pkg, _ := splitFunction(frame.Function)
	return pkg == facadePkg
}

// splitFunction splits a fully qualified function name such as
// "github.com/a/b.(*T).M.func1" into its package path and the remainder.
func splitFunction(fn string) (pkg, rest string) {
	slash := strings.LastIndexByte(fn, '/')
	dot := strings.IndexByte(fn[slash+1:], '.')
	if dot < 0 {
		return fn, emptyString
	}
	return fn[:slash+1+dot], fn[slash+1+dot+1:]
}

// parseFunction derives package, type and function names from a fully
// qualified runtime function name.
func parseFunction(fn string) CallSite {
	pkg, rest := splitFunction(fn)
	rest = strings.ReplaceAll(rest, "[...]", emptyString)
	site := CallSite{Package: pkg}

	if strings.HasPrefix(rest, "(") {
		end := strings.IndexByte(rest, ')')
		if end > 0 {
			recv := strings.TrimPrefix(rest[1:end], "*")
			site.Type = stripTypeParams(recv)
			rest = strings.TrimPrefix(rest[end+1:], ".")
		}
	} else if dot := strings.IndexByte(rest, '.'); dot > 0 && !isClosureName(rest[dot+1:]) {
		// value receiver: "T.M"
		site.Type = stripTypeParams(rest[:dot])
		rest = rest[dot+1:]
	}
	if site.Type == emptyString {
		site.Type = pkg[strings.LastIndexByte(pkg, '/')+1:]
	}

	if dot := strings.IndexByte(rest, '.'); dot >= 0 {
		rest = rest[:dot]
	}
	site.Function = strings.TrimSuffix(stripTypeParams(rest), "-fm")
	return site
}

// isClosureName reports whether s starts with a compiler generated segment
// ("func1", "gowrap2", "deferwrap1", or the index of an init function).
func isClosureName(s string) bool {
	seg := s
	if i := strings.IndexByte(seg, '.'); i >= 0 {
		seg = seg[:i]
	}
	if _, err := strconv.Atoi(seg); err == nil {
		return true
	}
	for _, p := range []string{"func", "gowrap", "deferwrap"} {
		if strings.HasPrefix(s, p) {
			tail := strings.TrimPrefix(s, p)
			if i := strings.IndexByte(tail, '.'); i >= 0 {
				tail = tail[:i]
			}
			if _, err := strconv.Atoi(tail); err == nil {
				return true
			}
		}
	}
	return false
}

func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}

// compositeName builds the registry key for a call site.
func compositeName(machine, pkg string, pid int, typ, function string) string {
	var b strings.Builder
	b.Grow(len(machine) + len(pkg) + len(typ) + len(function) + 16)
	b.WriteString(machine)
	b.WriteByte('.')
	b.WriteString(pkg)
	b.WriteByte('.')
	b.WriteString(strconv.Itoa(pid))
	b.WriteByte('.')
	b.WriteString(typ)
	b.WriteByte('.')
	b.WriteString(function)
	return b.String()
}

// newWrapperMatcher matches frames by caller type name or by fully
// qualified function name prefix. It returns nil when nothing is configured.
func newWrapperMatcher(typeNames, prefixes []string) wrapperMatcher {
	types := make(map[string]struct{}, len(typeNames))
	for _, t := range typeNames {
		if t = strings.TrimSpace(t); t != emptyString {
			types[t] = struct{}{}
		}
	}
	var pfx []string
	for _, p := range prefixes {
		if p = strings.TrimSpace(p); p != emptyString {
			pfx = append(pfx, p)
		}
	}
	if len(types) == 0 && len(pfx) == 0 {
		return nil
	}
	return func(site CallSite, function string) bool {
		if _, ok := types[site.Type]; ok {
			return true
		}
		for _, p := range pfx {
			if strings.HasPrefix(function, p) {
				return true
			}
		}
		return false
	}
}
