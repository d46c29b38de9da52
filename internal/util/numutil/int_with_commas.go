package numutil

import "strconv"

// Integer is any signed or unsigned integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IntWithCommas returns a string representation of an integer with commas.
//
// Example:
//
//	12345 -> "12,345"
func IntWithCommas[T Integer](i T) string {
	if i < 0 {
		// Negating the minimum value overflows, so work on the digits.
		return "-" + groupDigits(strconv.FormatInt(int64(i), 10)[1:])
	}
	return groupDigits(strconv.FormatUint(uint64(i), 10))
}

func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := len(digits) % 3
	if head == 0 {
		head = 3
	}

	out := []byte(digits[:head])
	for i := head; i < len(digits); i += 3 {
		out = append(out, ',')
		out = append(out, digits[i:i+3]...)
	}
	return string(out)
}
