package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := GetKeys(m)
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// IndexOf returns the position of v in s, or -1 when absent.
func IndexOf[A comparable](s []A, v A) int {
	for i, el := range s {
		if el == v {
			return i
		}
	}
	return -1
}

// RotateLeft returns a copy of s shifted left by n, so that s[n] comes first.
func RotateLeft[A any](s []A, n int) []A {
	if len(s) == 0 {
		return nil
	}
	n = n % len(s)
	if n < 0 {
		n += len(s)
	}
	res := make([]A, 0, len(s))
	res = append(res, s[n:]...)
	res = append(res, s[:n]...)
	return res
}

// FilterBlank drops zero values, e.g. the padding slots of a chord record.
func FilterBlank[A comparable](s []A) []A {
	var zero A
	var res []A
	for _, v := range s {
		if v != zero {
			res = append(res, v)
		}
	}
	return res
}
