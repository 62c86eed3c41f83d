package pj

import (
	"math/big"
	"strings"
)

// Equal reports whether a and b are structurally equal: same kinds, same
// element and member order, equal strings, and numerically equal numbers.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindString:
		return a.s == b.s
	case KindNumber:
		return numbersEqual(a.s, b.s)
	case KindArray:
		if len(a.elems) != len(b.elems) {
			return false
		}
		for i := range a.elems {
			if !Equal(a.elems[i], b.elems[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.members) != len(b.members) {
			return false
		}
		for i := range a.members {
			if a.members[i].Key != b.members[i].Key || !Equal(a.members[i].Value, b.members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// numbersEqual compares literals by value. Integer literals compare exactly;
// others are parsed as big.Float with enough mantissa bits to keep two
// different decimal literals apart, so the comparison holds at any magnitude.
func numbersEqual(x, y string) bool {
	if x == y {
		return true
	}
	if isIntegerLiteral(x) && isIntegerLiteral(y) {
		return canonicalZero(x) == canonicalZero(y)
	}
	prec := uint(4*max(len(x), len(y)) + 64)
	fx, _, errx := big.ParseFloat(x, 10, prec, big.ToNearestEven)
	fy, _, erry := big.ParseFloat(y, 10, prec, big.ToNearestEven)
	if errx != nil || erry != nil {
		return false
	}
	return fx.Cmp(fy) == 0
}

func isIntegerLiteral(s string) bool { return !strings.ContainsAny(s, ".eE") }

func canonicalZero(s string) string {
	if s == "-0" {
		return "0"
	}
	return s
}
