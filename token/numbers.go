package token

// LooksLikeNumber reports whether s is entirely a decimal number in the
// rfc 7159 grammar, with an optional leading minus. Strings matching this
// must be quoted so the decoder does not retype them.
func LooksLikeNumber(s string) bool {
	d := []byte(s)
	if len(d) > 0 && d[0] == '-' {
		d = d[1:]
	}
	digits := asciiDigits(d)
	if digits == 0 {
		return false
	}
	f := fract(d[digits:])
	e := exp(d[digits+f:])
	return digits+f+e == len(d)
}

// IsFloatForm reports whether a numeric string carries a fraction or
// exponent, distinguishing float literals from integer literals.
func IsFloatForm(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '.', 'e', 'E':
			return true
		}
	}
	return false
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

func fract(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	for i := 1; i < len(d); i++ {
		if !asciiDigit(d[i]) {
			if i == 1 {
				// . must be followed by 1 or more digits rfc 7159
				return 0
			}
			return i
		}
	}
	if len(d) == 1 {
		return 0
	}
	return len(d)
}
