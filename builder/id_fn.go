package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the city with zero-based index idx. It must be deterministic
// and injective.
type IDFn func(idx int) string

// DefaultIDFn returns "C" followed by idx, e.g. 0→"C0", 42→"C42".
func DefaultIDFn(idx int) string {
	return "C" + strconv.Itoa(idx)
}

// ExcelColumnIDFn returns spreadsheet column names, e.g. 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns prefix followed by idx, e.g. PrefixIDFn("Town")(3) = "Town3".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}
