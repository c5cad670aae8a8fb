package common

// GenerateSuccessors appends every board reachable by one move of side to
// buffer and returns the result. While side has fewer than three pieces it
// places a piece on each empty square in ascending order; afterwards each of
// its pieces, in ascending square order, slides to every empty adjacent
// square in adjacency order.
func (b *Board) GenerateSuccessors(buffer []Board, side Color) []Board {
	var result = buffer[:0]
	if b.Placing(side) {
		for sq := range b {
			if b[sq] != Empty {
				continue
			}
			var child = *b
			child[sq] = side
			result = append(result, child)
		}
		return result
	}
	for from := range b {
		if b[from] != side {
			continue
		}
		for _, to := range adjacent[from] {
			if b[to] != Empty {
				continue
			}
			var child = *b
			child[from], child[to] = child[to], child[from]
			result = append(result, child)
		}
	}
	return result
}

func (p *Position) GenerateSuccessors(buffer []Board) []Board {
	return p.Board.GenerateSuccessors(buffer, p.Turn)
}

// MakeMove returns the position after the move leading to child.
func (p *Position) MakeMove(child Board) Position {
	return Position{Board: child, Turn: p.Turn.Opponent()}
}

// IsLegalMove reports whether child is one of the successors of p.
func (p *Position) IsLegalMove(child Board) bool {
	var buffer [MaxSuccessors]Board
	for _, b := range p.GenerateSuccessors(buffer[:]) {
		if b == child {
			return true
		}
	}
	return false
}
