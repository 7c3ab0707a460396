// Package lookup filters in-memory slices of structs by attribute path.
//
// A term is a "__"-separated attribute path with an optional trailing
// operator segment:
//
//	list.Filter("name__icontains", "bunny")
//	list.Filter("id", 63306)                   // plain equality
//	list.Filter("results__num_votes__gt", 10)  // nested path
//
// Path segments match exported struct fields case-insensitively, ignoring
// underscores, so "num_votes" and "numVotes" both address a NumVotes field.
// Nil pointers along the path short-circuit: the item simply does not match.
package lookup

import (
	"reflect"
	"strings"
)

// PathSeparator splits a term into path segments.
const PathSeparator = "__"

// List is a filterable slice. Filter and Exclude return new lists and leave
// the receiver untouched.
type List[T any] []T

// Term is a parsed path plus comparison operator.
type Term struct {
	// Path holds the attribute path segments, outermost first.
	Path []string
	// Op is the comparison applied to the attribute at the end of the path.
	Op Op
}

// ParseTerm splits a raw term into its attribute path and operator. When the
// final segment names no known operator the whole string is the path and the
// operator defaults to equality.
func ParseTerm(raw string) Term {
	parts := strings.Split(raw, PathSeparator)
	if len(parts) > 1 {
		if op, ok := knownOp(parts[len(parts)-1]); ok {
			return Term{Path: parts[:len(parts)-1], Op: op}
		}
	}

	return Term{Path: parts, Op: OpEq}
}

// Attr resolves the "__"-separated attribute path against v. The boolean is
// false when the path does not exist or crosses a nil pointer.
func Attr(v any, path string) (any, bool) {
	return attr(reflect.ValueOf(v), strings.Split(path, PathSeparator))
}

func attr(rv reflect.Value, parts []string) (any, bool) {
	for _, part := range parts {
		for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
			if rv.IsNil() {
				return nil, false
			}
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			return nil, false
		}

		field := fieldIgnoreCase(rv, part)
		if !field.IsValid() {
			return nil, false
		}
		rv = field
	}

	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	return rv.Interface(), true
}

// fieldIgnoreCase finds an exported field whose name equals the segment after
// lowering case and dropping underscores on both sides.
func fieldIgnoreCase(rv reflect.Value, name string) reflect.Value {
	want := normalizeSegment(name)
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if normalizeSegment(f.Name) == want {
			return rv.Field(i)
		}
	}

	return reflect.Value{}
}

func normalizeSegment(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

// matches evaluates a parsed term against a single item.
func matches[T any](item T, term Term, rhs any) bool {
	value, ok := attr(reflect.ValueOf(item), term.Path)
	if !ok {
		return false
	}

	return term.Op.Evaluate(value, rhs)
}

// Filter returns the items whose attribute at the term's path satisfies the
// comparison against rhs. Items missing the path are dropped.
func (l List[T]) Filter(raw string, rhs any) List[T] {
	term := ParseTerm(raw)

	var out List[T]
	for _, item := range l {
		if matches(item, term, rhs) {
			out = append(out, item)
		}
	}

	return out
}

// Exclude returns the items that do not satisfy the comparison. Items missing
// the path are kept, mirroring Filter.
func (l List[T]) Exclude(raw string, rhs any) List[T] {
	term := ParseTerm(raw)

	var out List[T]
	for _, item := range l {
		if !matches(item, term, rhs) {
			out = append(out, item)
		}
	}

	return out
}

// Get returns the single item matching the term. The boolean is false when
// zero or more than one item matches.
func (l List[T]) Get(raw string, rhs any) (T, bool) {
	found := l.Filter(raw, rhs)
	if len(found) != 1 {
		var zero T

		return zero, false
	}

	return found[0], true
}
