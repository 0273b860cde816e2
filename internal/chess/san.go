package chess

import (
	"strings"

	"github.com/lgbarn/oyster-go/internal/errors"
)

// sanToken is the result of scanning a move in algebraic notation.
type sanToken struct {
	piece     PieceType
	fromCol   int // -1 if not given
	fromRow   int // -1 if not given
	to        Square
	promotion PieceType
}

// castleToken recognises the castling tokens, with letter O or digit zero.
func castleToken(s string) (CastleSide, bool) {
	switch s {
	case "O-O", "0-0":
		return Kingside, true
	case "O-O-O", "0-0-0":
		return Queenside, true
	}
	return NoCastle, false
}

// trimSuffixes drops check, mate and annotation marks.
func trimSuffixes(s string) string {
	return strings.TrimRight(strings.TrimSpace(s), "+#!?")
}

// ParseSAN finds the legal move meant by short algebraic notation such as
// "Nc3", "exd5", "Rad1", "e8=Q" or "O-O". A missing piece letter means a
// pawn. The error wraps ErrIllegalMove when nothing matches,
// ErrPromotionRequired when a pawn reaches the last rank without a piece,
// and is an *AmbiguityError when more than one move matches.
func (b *Board) ParseSAN(san string) (Move, error) {
	text := trimSuffixes(san)
	if side, ok := castleToken(text); ok {
		return b.findCastle(san, side)
	}

	tok, ok := scanSAN(text)
	if !ok {
		return Move{}, errors.Wrapf(errors.ErrIllegalMove, "%q is not algebraic notation", san)
	}

	var candidates []Move
	for _, m := range b.LegalMoves() {
		if m.IsCastle() || m.To != tok.to || m.Piece.Type() != tok.piece {
			continue
		}
		if tok.fromCol >= 0 && m.From.Col != tok.fromCol {
			continue
		}
		if tok.fromRow >= 0 && m.From.Row != tok.fromRow {
			continue
		}
		candidates = append(candidates, m)
	}
	return resolve(san, candidates, tok.promotion)
}

// scanSAN scans the token left to right: an optional piece letter, up to two
// origin hints, the destination square and an optional promotion piece.
// Capture marks and separators are skipped.
func scanSAN(s string) (sanToken, bool) {
	tok := sanToken{piece: Pawn, fromCol: -1, fromRow: -1, to: NoSquare}

	body, promotion, ok := splitPromotion(s)
	if !ok {
		return tok, false
	}
	tok.promotion = promotion

	i := 0
	if i < len(body) && strings.IndexByte("NBRQK", body[i]) >= 0 {
		tok.piece = PieceTypeFromLetter(body[i])
		i++
	}

	var coords []byte
	for ; i < len(body); i++ {
		c := body[i]
		switch {
		case isFile(c), isRank(c):
			coords = append(coords, c)
		case c == 'x' || c == ':' || c == '-':
		default:
			return tok, false
		}
	}

	n := len(coords)
	if n < 2 || n > 4 || !isFile(coords[n-2]) || !isRank(coords[n-1]) {
		return tok, false
	}
	tok.to = Sq(int(coords[n-1]-RankBase), int(coords[n-2]-FileBase))

	hints := coords[:n-2]
	if len(hints) == 2 && !(isFile(hints[0]) && isRank(hints[1])) {
		return tok, false
	}
	for _, c := range hints {
		if isFile(c) {
			tok.fromCol = int(c - FileBase)
		} else {
			tok.fromRow = int(c - RankBase)
		}
	}

	if tok.promotion != NoPieceType && tok.piece != Pawn {
		return tok, false
	}
	return tok, true
}

// splitPromotion separates a trailing promotion piece ("=Q", "Q" or "q")
// from the rest of the token. A trailing letter counts as a promotion only
// after a rank digit or '=', so a file letter is never mistaken for one.
func splitPromotion(s string) (body string, promotion PieceType, ok bool) {
	n := len(s)
	if n < 2 {
		return s, NoPieceType, true
	}
	last, prev := s[n-1], s[n-2]
	if isRank(last) {
		return s, NoPieceType, true
	}
	if !isRank(prev) && prev != '=' {
		return s, NoPieceType, true
	}
	switch PieceTypeFromLetter(last) {
	case Queen, Rook, Bishop, Knight:
		promotion = PieceTypeFromLetter(last)
	default:
		return s, NoPieceType, false
	}
	return strings.TrimSuffix(s[:n-1], "="), promotion, true
}

func isFile(c byte) bool { return c >= 'a' && c <= 'h' }
func isRank(c byte) bool { return c >= '1' && c <= '8' }

// ParseMove accepts long form ("e2e4", "e2-e4", "e7e8q", "e7-e8=Q"),
// castling tokens, or short algebraic notation, and returns the legal move
// meant. Errors are as for ParseSAN.
func (b *Board) ParseMove(notation string) (Move, error) {
	text := trimSuffixes(notation)
	if side, ok := castleToken(text); ok {
		return b.findCastle(notation, side)
	}

	from, to, promotion, ok := scanLongForm(text)
	if !ok {
		return b.ParseSAN(notation)
	}

	var candidates []Move
	for _, m := range b.LegalMoves() {
		if m.From == from && m.To == to {
			candidates = append(candidates, m)
		}
	}
	return resolve(notation, candidates, promotion)
}

// scanLongForm parses origin square, optional '-' or 'x', destination square
// and an optional promotion piece.
func scanLongForm(s string) (from, to Square, promotion PieceType, ok bool) {
	if len(s) < 4 || !isFile(s[0]) || !isRank(s[1]) {
		return NoSquare, NoSquare, NoPieceType, false
	}
	from = Sq(int(s[1]-RankBase), int(s[0]-FileBase))
	rest := s[2:]
	if rest[0] == '-' || rest[0] == 'x' {
		rest = rest[1:]
	}
	if len(rest) < 2 || !isFile(rest[0]) || !isRank(rest[1]) {
		return NoSquare, NoSquare, NoPieceType, false
	}
	to = Sq(int(rest[1]-RankBase), int(rest[0]-FileBase))
	rest = strings.TrimPrefix(rest[2:], "=")
	switch len(rest) {
	case 0:
	case 1:
		switch t := PieceTypeFromLetter(rest[0]); t {
		case Queen, Rook, Bishop, Knight:
			promotion = t
		default:
			return NoSquare, NoSquare, NoPieceType, false
		}
	default:
		return NoSquare, NoSquare, NoPieceType, false
	}
	return from, to, promotion, true
}

// findCastle returns the legal castle on side, if any.
func (b *Board) findCastle(notation string, side CastleSide) (Move, error) {
	for _, m := range b.LegalMoves() {
		if m.Castle == side {
			return m, nil
		}
	}
	return Move{}, errors.Wrapf(errors.ErrIllegalMove, "%q", notation)
}

// resolve narrows the matching moves to exactly one.
func resolve(notation string, candidates []Move, promotion PieceType) (Move, error) {
	if len(candidates) == 0 {
		return Move{}, errors.Wrapf(errors.ErrIllegalMove, "%q", notation)
	}

	if candidates[0].IsPromotion() {
		if promotion == NoPieceType {
			return Move{}, errors.Wrapf(errors.ErrPromotionRequired, "%q", notation)
		}
		matched := candidates[:0:0]
		for _, m := range candidates {
			if m.Promotion.Type() == promotion {
				matched = append(matched, m)
			}
		}
		candidates = matched
	} else if promotion != NoPieceType {
		return Move{}, errors.Wrapf(errors.ErrIllegalMove, "%q cannot promote", notation)
	}

	switch len(candidates) {
	case 0:
		return Move{}, errors.Wrapf(errors.ErrIllegalMove, "%q", notation)
	case 1:
		return candidates[0], nil
	default:
		return Move{}, &AmbiguityError{Notation: notation, Candidates: candidates}
	}
}

// SAN renders a legal move of this position in short algebraic notation,
// with the least disambiguation needed and a '+' or '#' suffix.
func (b *Board) SAN(m Move) string {
	var sb strings.Builder

	if m.IsCastle() {
		sb.WriteString(m.Castle.String())
	} else {
		if t := m.Piece.Type(); t == Pawn {
			if m.IsCapture() {
				sb.WriteByte(m.From.File())
			}
		} else {
			sb.WriteByte(t.Letter())
			sb.WriteString(b.disambiguation(m))
		}
		if m.IsCapture() {
			sb.WriteByte('x')
		}
		sb.WriteString(m.To.String())
		if m.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(m.Promotion.Type().Letter())
		}
	}

	b.MakeMove(m)
	if b.InCheck() {
		if b.HasLegalMoves() {
			sb.WriteByte('+')
		} else {
			sb.WriteByte('#')
		}
	}
	b.UnmakeMove(m)

	return sb.String()
}

// disambiguation returns the origin file, rank or square needed to tell m
// apart from other legal moves of the same piece type to the same square:
// the file if it is unique, else the rank if unique, else both.
func (b *Board) disambiguation(m Move) string {
	var others bool
	var sameFile, sameRank bool
	for _, o := range b.LegalMoves() {
		if o.IsCastle() || o.Piece != m.Piece || o.To != m.To || o.From == m.From {
			continue
		}
		others = true
		if o.From.Col == m.From.Col {
			sameFile = true
		}
		if o.From.Row == m.From.Row {
			sameRank = true
		}
	}
	switch {
	case !others:
		return ""
	case !sameFile:
		return string(m.From.File())
	case !sameRank:
		return string(m.From.Rank())
	default:
		return m.From.String()
	}
}
