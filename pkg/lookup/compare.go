package lookup

import (
	"reflect"
	"strings"
)

// Op names a comparison operator usable as the final segment of a term,
// e.g. "name__icontains".
type Op string

const (
	OpEq          Op = "eq"
	OpNe          Op = "ne"
	OpGt          Op = "gt"
	OpGe          Op = "ge"
	OpLt          Op = "lt"
	OpLe          Op = "le"
	OpIn          Op = "in"
	OpContains    Op = "contains"
	OpIContains   Op = "icontains"
	OpStartsWith  Op = "startswith"
	OpIStartsWith Op = "istartswith"
	OpEndsWith    Op = "endswith"
	OpIEndsWith   Op = "iendswith"
	OpIEqual      Op = "iequal"
)

// knownOp reports whether s (case-insensitive) names an operator.
func knownOp(s string) (Op, bool) {
	op := Op(strings.ToLower(s))
	switch op {
	case OpEq, OpNe, OpGt, OpGe, OpLt, OpLe, OpIn,
		OpContains, OpIContains, OpStartsWith, OpIStartsWith,
		OpEndsWith, OpIEndsWith, OpIEqual:
		return op, true
	}

	return "", false
}

// Evaluate applies the operator to lhs (an attribute value) and rhs (the
// query operand). Comparisons across mismatched types report false rather
// than panicking; numeric kinds are compared by value regardless of width.
func (op Op) Evaluate(lhs, rhs any) bool {
	switch op {
	case OpEq:
		return equal(lhs, rhs)
	case OpNe:
		return !equal(lhs, rhs)
	case OpGt, OpGe, OpLt, OpLe:
		return ordered(op, lhs, rhs)
	case OpIn:
		return in(lhs, rhs)
	case OpContains:
		return stringOp(lhs, rhs, strings.Contains)
	case OpIContains:
		return foldedOp(lhs, rhs, strings.Contains)
	case OpStartsWith:
		return stringOp(lhs, rhs, strings.HasPrefix)
	case OpIStartsWith:
		return foldedOp(lhs, rhs, strings.HasPrefix)
	case OpEndsWith:
		return stringOp(lhs, rhs, strings.HasSuffix)
	case OpIEndsWith:
		return foldedOp(lhs, rhs, strings.HasSuffix)
	case OpIEqual:
		return foldedOp(lhs, rhs, strings.EqualFold)
	}

	return false
}

// equal compares two values, normalizing numeric widths first so that e.g.
// an int64 struct field matches an untyped int literal.
func equal(lhs, rhs any) bool {
	if lf, lok := asFloat(lhs); lok {
		if rf, rok := asFloat(rhs); rok {
			return lf == rf
		}

		return false
	}
	if ls, lok := asString(lhs); lok {
		if rs, rok := asString(rhs); rok {
			return ls == rs
		}

		return false
	}

	return reflect.DeepEqual(lhs, rhs)
}

// ordered handles gt/ge/lt/le for numeric and string operands.
func ordered(op Op, lhs, rhs any) bool {
	if lf, lok := asFloat(lhs); lok {
		rf, rok := asFloat(rhs)
		if !rok {
			return false
		}

		switch op {
		case OpGt:
			return lf > rf
		case OpGe:
			return lf >= rf
		case OpLt:
			return lf < rf
		case OpLe:
			return lf <= rf
		}
	}

	ls, lok := asString(lhs)
	rs, rok := asString(rhs)
	if !lok || !rok {
		return false
	}

	switch op {
	case OpGt:
		return ls > rs
	case OpGe:
		return ls >= rs
	case OpLt:
		return ls < rs
	case OpLe:
		return ls <= rs
	}

	return false
}

// in reports whether lhs equals any element of the rhs slice or array.
func in(lhs, rhs any) bool {
	rv := reflect.ValueOf(rhs)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if equal(lhs, rv.Index(i).Interface()) {
			return true
		}
	}

	return false
}

func stringOp(lhs, rhs any, f func(string, string) bool) bool {
	ls, lok := asString(lhs)
	rs, rok := asString(rhs)

	return lok && rok && f(ls, rs)
}

func foldedOp(lhs, rhs any, f func(string, string) bool) bool {
	ls, lok := asString(lhs)
	rs, rok := asString(rhs)

	return lok && rok && f(strings.ToLower(ls), strings.ToLower(rs))
}

// asFloat widens any numeric kind to float64.
func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}

	return 0, false
}

// asString accepts strings and string-kinded types (e.g. domain enums).
func asString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}

	return "", false
}
