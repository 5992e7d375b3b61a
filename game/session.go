package game

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"memory-game/config"
	"memory-game/matcherrors"
)

// Result summarises a finished session.
type Result struct {
	SessionID string
	Outcome   Outcome
	Turns     int
	Hints     int
	Elapsed   time.Duration
}

// Session plays one game of Memory on a single board.
type Session struct {
	ID       string
	Board    *Board
	Phase    TurnPhase
	Turns    int
	Hints    int
	Tokens   Tokens
	console  *Console
	renderer *Renderer
	rng      *rand.Rand
	logger   *slog.Logger
	now      func() time.Time
}

// NewSession creates a session over board. rng drives hint selection.
func NewSession(cfg *config.Config, board *Board, con *Console, renderer *Renderer, rng *rand.Rand, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &Session{
		ID:       id,
		Board:    board,
		Phase:    AwaitingFirstPick,
		Tokens:   Tokens{Quit: cfg.QuitToken, Hint: cfg.HintToken},
		console:  con,
		renderer: renderer,
		rng:      rng,
		logger:   logger.With("tag", "game", "session", id),
		now:      time.Now,
	}
}

// Run plays turns until the board is cleared or the player quits. If input
// runs out, the session ends as a quit and ErrInputClosed is returned.
func (s *Session) Run() (Result, error) {
	start := s.now()
	s.logger.Info("session started", "dim", s.Board.Dim, "pairs", s.Board.Pairs())
	s.console.Print(s.renderer.Board(s.Board, nil))

	for {
		outcome, err := s.playTurn()
		if outcome == InProgress {
			continue
		}

		res := Result{
			SessionID: s.ID,
			Outcome:   outcome,
			Turns:     s.Turns,
			Hints:     s.Hints,
			Elapsed:   s.now().Sub(start),
		}
		if outcome == Won {
			s.console.Println("Congrats - you've completed the game!")
			s.console.Printf("It took you %d turns and %d seconds to match all the pairs.\n\n",
				res.Turns, int(res.Elapsed.Round(time.Second)/time.Second))
		}
		s.logger.Info("session ended", "outcome", outcome, "turns", res.Turns, "hints", res.Hints, "elapsed", res.Elapsed.Round(time.Millisecond))
		return res, err
	}
}

// playTurn runs one AwaitingFirstPick -> AwaitingSecondPick -> Resolving cycle.
func (s *Session) playTurn() (Outcome, error) {
	s.Phase = AwaitingFirstPick
	first, quit, err := s.selectCell()
	if err != nil || quit {
		return s.quit(err)
	}
	s.console.Print(s.renderer.Board(s.Board, NewOverlay(first)))

	s.Phase = AwaitingSecondPick
	var second Cell
	for {
		second, quit, err = s.selectCell()
		if err != nil || quit {
			return s.quit(err)
		}
		if second != first {
			break
		}
		s.logger.Debug("rejected pick", "cell", second, "err", matcherrors.ErrSameCell)
		s.console.Println("\nA card cannot be matched with itself!")
	}
	s.console.Print(s.renderer.Board(s.Board, NewOverlay(first, second)))

	s.Phase = Resolving
	s.Turns++
	matched := s.Board.Reveal(first, second)
	if matched {
		s.console.Println("\nIt's a match! :)")
		s.console.Println()
	} else {
		s.console.Println("Not a match - try again!")
		s.console.Println()
	}
	s.logger.Debug("turn resolved", "turn", s.Turns, "first", first, "second", second, "match", matched)

	if s.Board.AllRevealed() {
		return Won, nil
	}
	s.Phase = AwaitingFirstPick
	return InProgress, nil
}

// selectCell prompts until the player types a valid cell or quits. Hints are
// answered in place and the prompt repeats.
func (s *Session) selectCell() (cell Cell, quit bool, err error) {
	s.console.Println("\nType the row index and column index--separated by a space--of the card you want to flip.")
	for {
		s.console.Printf("Enter two integers between 1 and %d:\n", s.Board.Dim)
		s.console.Printf("(Or type %s to quit or %s for a hint)\n", s.Tokens.Quit, s.Tokens.Hint)

		line, err := s.console.ReadLine()
		if err != nil {
			return Cell{}, false, err
		}
		cmd := ParseInput(line, s.Board.Dim, s.Tokens)
		switch cmd.Kind {
		case CommandCoordinates:
			return cmd.Cell, false, nil
		case CommandQuit:
			return Cell{}, true, nil
		case CommandHint:
			if _, err := s.giveHint(); err != nil {
				s.console.Printf("No hint available: %v.\n", err)
			}
		default:
			s.logger.Debug("rejected input", "phase", s.Phase, "input", line, "err", cmd.Err)
			s.console.Printf("Invalid input: %v.\n", cmd.Err)
		}
	}
}

// giveHint names the symbol and position of one hidden card chosen uniformly
// at random. The board is left unchanged.
func (s *Session) giveHint() (Cell, error) {
	hidden := s.Board.HiddenCells()
	if len(hidden) == 0 {
		return Cell{}, matcherrors.ErrNoHiddenCards
	}
	c := hidden[s.rng.Intn(len(hidden))]
	s.Hints++
	s.logger.Debug("hint given", "phase", s.Phase, "cell", c)
	s.console.Printf("\nHint: The character %c appears at %s.\n\n", s.Board.Symbol(c), c)
	return c, nil
}

// quit prints the answer board and ends the session. A cause other than
// ErrInputClosed is still reported after the board is shown.
func (s *Session) quit(cause error) (Outcome, error) {
	if cause != nil && !errors.Is(cause, matcherrors.ErrInputClosed) {
		s.logger.Error("reading input", "phase", s.Phase, "err", cause)
	}
	s.console.Println("\nThe board was:")
	s.console.Print(s.renderer.Answer(s.Board))
	s.console.Println("Good-bye!")
	s.console.Println()
	return Quit, cause
}
