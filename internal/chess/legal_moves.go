package chess

// promotionPieces lists promotion choices, strongest first.
var promotionPieces = []PieceType{Queen, Rook, Bishop, Knight}

// PseudoLegalMoves returns every move of the side to move that obeys the
// piece movement rules, without checking whether it leaves the mover's king
// in check. Castles are included and are fully validated, since their
// conditions cannot be checked by trying the move. Squares are visited from
// a1 to h8, castles come last.
func (b *Board) PseudoLegalMoves() []Move {
	moves := make([]Move, 0, 48)
	colour := b.ToMove

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := b.Squares[row][col]
			if piece == NoPiece || piece.Colour() != colour {
				continue
			}
			from := Sq(row, col)
			for to := range piece.Destinations(b, from) {
				moves = b.appendMoves(moves, piece, from, to)
			}
		}
	}

	return b.appendCastles(moves)
}

// appendMoves wraps one destination into moves, expanding promotions into
// one move per promotion piece.
func (b *Board) appendMoves(moves []Move, piece Piece, from, to Square) []Move {
	m := b.newMove(piece, from, to)
	if piece.Type() == Pawn && m.To == b.EnPassant && m.From.Col != m.To.Col {
		m.EnPassant = true
		m.Capture = MakePiece(piece.Colour().Opposite(), Pawn)
	}
	if piece.Type() == Pawn && to.Row == promotionRow(piece.Colour()) {
		for _, t := range promotionPieces {
			m.Promotion = MakePiece(piece.Colour(), t)
			moves = append(moves, m)
		}
		return moves
	}
	return append(moves, m)
}

// newMove builds an ordinary move carrying the current prior state.
func (b *Board) newMove(piece Piece, from, to Square) Move {
	return Move{
		From:           from,
		To:             to,
		Piece:          piece,
		Capture:        b.Get(to),
		PriorCastle:    b.Castling,
		PriorEnPassant: b.EnPassant,
		PriorHalfmove:  b.HalfmoveClock,
	}
}

// appendCastles adds each castle the side to move may make right now: the
// right is held, king and rook stand on their home squares, the squares
// between them are empty, and the king is not in check and does not pass
// through or land on an attacked square.
func (b *Board) appendCastles(moves []Move) []Move {
	colour := b.ToMove
	for _, side := range [2]CastleSide{Kingside, Queenside} {
		if !b.Castling.Can(colour, side) {
			continue
		}
		path := castlePaths[colour][side]
		if b.Get(path.KingFrom) != MakePiece(colour, King) || b.Get(path.RookFrom) != MakePiece(colour, Rook) {
			continue
		}
		if !b.allEmpty(path.Between) || b.anyAttacked(path.KingPath, colour.Opposite()) {
			continue
		}
		m := b.newMove(MakePiece(colour, King), path.KingFrom, path.KingTo)
		m.Castle = side
		moves = append(moves, m)
	}
	return moves
}

func (b *Board) allEmpty(squares []Square) bool {
	for _, sq := range squares {
		if b.Get(sq) != NoPiece {
			return false
		}
	}
	return true
}

func (b *Board) anyAttacked(squares []Square, byColour Colour) bool {
	for _, sq := range squares {
		if b.IsAttacked(sq, byColour) {
			return true
		}
	}
	return false
}

// LegalMoves returns the pseudo-legal moves that do not leave the mover's
// king in check. Each move is tried on the board and taken back, so the
// board is unchanged on return.
func (b *Board) LegalMoves() []Move {
	pseudo := b.PseudoLegalMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		if b.isSafe(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool {
	for _, m := range b.PseudoLegalMoves() {
		if b.isSafe(m) {
			return true
		}
	}
	return false
}

// isSafe makes m, tests the mover's king and takes m back.
func (b *Board) isSafe(m Move) bool {
	colour := b.ToMove
	b.MakeMove(m)
	safe := !b.IsInCheck(colour)
	b.UnmakeMove(m)
	return safe
}

// Mobility returns the number of legal moves colour would have if it were
// to move. For the side not to move the en-passant target is ignored, since
// it only ever belongs to the side to move.
func (b *Board) Mobility(colour Colour) int {
	if colour == b.ToMove {
		return len(b.LegalMoves())
	}
	toMove, ep := b.ToMove, b.EnPassant
	b.ToMove, b.EnPassant = colour, NoSquare
	n := len(b.LegalMoves())
	b.ToMove, b.EnPassant = toMove, ep
	return n
}
