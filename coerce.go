package commander

import (
	"strconv"
	"strings"
)

// Common coercion functions for option values. Each one falls back to
// the prior bound value (or the option default) when the raw value does
// not convert, mirroring the no-match behavior of regexp coercions.

// Int coerces the value into an int.
func Int(value string, prior any) any {
	if num, err := strconv.Atoi(value); err == nil {
		return num
	}

	return prior
}

// Float coerces the value into a float64.
func Float(value string, prior any) any {
	if num, err := strconv.ParseFloat(value, 64); err == nil {
		return num
	}

	return prior
}

// Increment counts flag occurrences: each firing bumps the prior bound
// value by one, so a repeated "-v" binds how many times it was given.
// Non-integer priors restart the count.
func Increment(_ string, prior any) any {
	count, _ := prior.(int)

	return count + 1
}

// List returns a coercion splitting the value on the given separator.
func List(sep string) CoerceFunc {
	return func(value string, _ any) any {
		return strings.Split(value, sep)
	}
}

// Collect accumulates each occurrence's value into a string slice, so a
// repeated flag gathers all its values instead of keeping the last one.
func Collect(value string, prior any) any {
	list, _ := prior.([]string)

	return append(list, value)
}
