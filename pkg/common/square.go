package common

//	0 1 2
//	3 4 5
//	6 7 8
const (
	SquareA1 = iota
	SquareB1
	SquareC1
	SquareA2
	SquareB2
	SquareC2
	SquareA3
	SquareB3
	SquareC3
)

const SquareCenter = SquareB2

// Scan order of the winning lines: rows, columns, main diagonal, anti-diagonal.
var lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{6, 4, 2},
}

// Slide targets in generation order. The center comes first for every
// other square.
var adjacent = [BoardSize][]int{
	{4, 1, 3},
	{4, 0, 2},
	{4, 1, 5},
	{4, 0, 6},
	{0, 1, 2, 3, 5, 6, 7, 8},
	{4, 2, 8},
	{4, 3, 7},
	{4, 6, 8},
	{4, 7, 5},
}

func Lines() [8][3]int {
	return lines
}

func Adjacent(sq int) []int {
	return adjacent[sq]
}

func IsAdjacent(from, to int) bool {
	for _, sq := range adjacent[from] {
		if sq == to {
			return true
		}
	}
	return false
}

func File(sq int) int {
	return sq % 3
}

func Rank(sq int) int {
	return sq / 3
}

const (
	fileNames = "abc"
	rankNames = "123"
)

func SquareName(sq int) string {
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}
