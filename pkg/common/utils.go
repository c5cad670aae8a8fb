package common

func Min(l, r int) int {
	if l < r {
		return l
	}
	return r
}

func Max(l, r int) int {
	if l > r {
		return l
	}
	return r
}

func cellChar(c Color) byte {
	switch c {
	case White:
		return 'w'
	case Black:
		return 'b'
	}
	return '.'
}

func parseCell(ch rune) (Color, bool) {
	switch ch {
	case 'w', 'W':
		return White, true
	case 'b', 'B':
		return Black, true
	case '.', ' ', '_':
		return Empty, true
	}
	return Empty, false
}
