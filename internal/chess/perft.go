package chess

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The board is restored on return.
func (b *Board) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.MakeMove(m)
		nodes += b.Perft(depth - 1)
		b.UnmakeMove(m)
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  Move
	Nodes uint64
}

// Divide runs Perft(depth-1) below each legal root move, in move order.
func (b *Board) Divide(depth int) []DivideEntry {
	if depth < 1 {
		return nil
	}
	moves := b.LegalMoves()
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		b.MakeMove(m)
		entries = append(entries, DivideEntry{Move: m, Nodes: b.Perft(depth - 1)})
		b.UnmakeMove(m)
	}
	return entries
}
