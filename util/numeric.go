package util

import "math"

// ParsedInt is the outcome of a permissive integer parse. Valid is false when
// the input had no leading numeral at all, in which case Value is 0.
type ParsedInt struct {
	Value int64
	Valid bool
}

// ParseLeadingInt reads as many leading decimal digits as possible from s.
// Leading ASCII whitespace is skipped and an optional '+' or '-' sign is
// honoured. Anything after the digits is ignored ("12abc" yields 12). Values
// outside the int64 range saturate at math.MaxInt64 / math.MinInt64.
func ParseLeadingInt(s string) ParsedInt {
	i := 0
	for i < len(s) && isBlank(s[i]) {
		i++
	}

	negative := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		negative = s[i] == '-'
		i++
	}

	start := i
	var acc uint64
	overflow := false
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		if overflow {
			continue
		}
		d := uint64(s[i] - '0')
		if acc > (math.MaxUint64-d)/10 {
			overflow = true
			continue
		}
		acc = acc*10 + d
	}

	if i == start {
		return ParsedInt{}
	}

	if negative {
		if overflow || acc > uint64(math.MaxInt64)+1 {
			return ParsedInt{Value: math.MinInt64, Valid: true}
		}
		return ParsedInt{Value: -int64(acc), Valid: true}
	}

	if overflow || acc > math.MaxInt64 {
		return ParsedInt{Value: math.MaxInt64, Valid: true}
	}

	return ParsedInt{Value: int64(acc), Valid: true}
}

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
