package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/lgbarn/oyster-go/internal/chess"
	"github.com/lgbarn/oyster-go/internal/config"
	"github.com/lgbarn/oyster-go/internal/engine"
	"github.com/lgbarn/oyster-go/internal/errors"
)

// session is one game between a human on the input stream and an engine.
type session struct {
	board     *chess.Board
	engine    engine.Engine
	human     chess.Colour
	showBoard bool

	in  *bufio.Scanner
	out io.Writer
}

func newSession(cfg *config.Config, board *chess.Board, eng engine.Engine, in io.Reader) *session {
	human := chess.White
	switch cfg.Game.Player {
	case config.PlayBlack:
		human = chess.Black
	case config.PlayRandom:
		if rand.New(rand.NewSource(cfg.Search.Seed)).Intn(2) == 0 {
			human = chess.Black
		}
	}
	return &session{
		board:     board,
		engine:    eng,
		human:     human,
		showBoard: cfg.Game.ShowBoard,
		in:        bufio.NewScanner(in),
		out:       cfg.OutputFile,
	}
}

// run plays until the game ends, the input ends or the human quits, and
// returns the state the game was left in.
func (s *session) run() chess.Outcome {
	fmt.Fprintf(s.out, "You play %s against %s. Type help for commands.\n", s.human, s.engine.Name())

	for {
		outcome := s.board.Outcome()
		if outcome != chess.Ongoing {
			s.announce(outcome)
			return outcome
		}

		if s.board.ToMove != s.human {
			m := s.engine.BestMove(s.board)
			fmt.Fprintf(s.out, "%s plays %s\n", s.engine.Name(), s.board.SAN(m))
			s.board.MakeMove(m)
			continue
		}

		if s.showBoard {
			fmt.Fprint(s.out, s.board)
		}
		line, ok := s.prompt(fmt.Sprintf("%d. %s> ", s.board.MoveNumber, s.board.ToMove))
		if !ok {
			return outcome
		}
		if quit := s.command(line); quit {
			return outcome
		}
	}
}

// prompt writes p and reads one trimmed line.
func (s *session) prompt(p string) (string, bool) {
	fmt.Fprint(s.out, p)
	if !s.in.Scan() {
		fmt.Fprintln(s.out)
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// command handles one line of input and reports whether to stop.
func (s *session) command(line string) bool {
	switch line {
	case "":
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(s.out, "Moves: Nf3, exd5, e8=Q, O-O, or g1f3, e7e8q.")
		fmt.Fprintln(s.out, "Commands: undo, moves, fen, board, help, quit.")
	case "undo":
		s.undo()
	case "moves":
		fmt.Fprintln(s.out, strings.Join(s.legalSAN(), " "))
	case "fen":
		fmt.Fprintln(s.out, s.board.FEN())
	case "board":
		fmt.Fprint(s.out, s.board)
	default:
		s.play(line)
	}
	return false
}

// undo takes back the engine's reply and the human move before it. When the
// engine's opening move is all there is, the engine moves again.
func (s *session) undo() {
	if _, err := s.board.Pop(); err != nil {
		fmt.Fprintf(s.out, "Cannot undo: %v\n", err)
		return
	}
	if s.board.ToMove == s.human {
		return
	}
	if _, err := s.board.Pop(); err != nil && !errors.Is(err, errors.ErrEmptyHistory) {
		fmt.Fprintf(s.out, "Cannot undo: %v\n", err)
	}
}

// play applies the human's move, asking for a promotion piece or listing
// the candidates when the notation is not enough.
func (s *session) play(notation string) {
	_, err := s.board.Push(notation)
	switch {
	case err == nil:
	case errors.Is(err, errors.ErrPromotionRequired):
		piece, ok := s.prompt("Promote to (q, r, b, n)> ")
		if !ok || len(piece) != 1 {
			fmt.Fprintln(s.out, "Move cancelled.")
			return
		}
		base := strings.TrimRight(notation, "+#")
		if _, err := s.board.Push(base + "=" + strings.ToUpper(piece)); err != nil {
			fmt.Fprintf(s.out, "Illegal move: %v\n", err)
		}
	case errors.Is(err, errors.ErrAmbiguousMove):
		var names []string
		for _, m := range chess.AmbiguousCandidates(err) {
			names = append(names, s.board.SAN(m))
		}
		fmt.Fprintf(s.out, "Ambiguous move %q; did you mean %s?\n", notation, strings.Join(names, " or "))
	default:
		fmt.Fprintf(s.out, "Illegal move: %v\n", err)
	}
}

func (s *session) legalSAN() []string {
	moves := s.board.LegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = s.board.SAN(m)
	}
	return out
}

func (s *session) announce(outcome chess.Outcome) {
	switch outcome {
	case chess.Checkmate:
		fmt.Fprintf(s.out, "Checkmate. %s wins.\n", s.board.ToMove.Opposite())
	default:
		fmt.Fprintf(s.out, "Draw: %s.\n", outcome)
	}
}
