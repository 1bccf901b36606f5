package fix

import "math"

// ParseUint decodes base-10 digit text without allocating.
func ParseUint(b []byte) (uint64, error) {
	if len(b) == 0 {
		return 0, ErrMalformedNumber
	}
	var n uint64
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, ErrMalformedNumber
		}
		d := uint64(c - '0')
		if n > (math.MaxUint64-d)/10 {
			return 0, ErrMalformedNumber
		}
		n = n*10 + d
	}
	return n, nil
}

func parseTag(b []byte) (int, error) {
	n, err := ParseUint(b)
	if err != nil || n > math.MaxInt32 {
		return 0, ErrMalformedTag
	}
	return int(n), nil
}
