package game

import (
	"fmt"
	"strconv"
	"strings"

	"memory-game/matcherrors"
)

// CommandKind tags what a line of player input asked for.
type CommandKind int

const (
	CommandInvalid CommandKind = iota
	CommandCoordinates
	CommandQuit
	CommandHint
)

// String returns the string representation of a CommandKind.
func (k CommandKind) String() string {
	switch k {
	case CommandInvalid:
		return "invalid"
	case CommandCoordinates:
		return "coordinates"
	case CommandQuit:
		return "quit"
	case CommandHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Tokens are the words that stand for quit and hint at a card prompt.
type Tokens struct {
	Quit string
	Hint string
}

// Command is one parsed line of input. Cell is set for CommandCoordinates
// and Err for CommandInvalid.
type Command struct {
	Kind CommandKind
	Cell Cell
	Err  error
}

// ParseInput interprets a line typed at a card prompt. Coordinates are
// 1-indexed on input and zero-indexed in the returned Cell.
func ParseInput(line string, dim int, tokens Tokens) Command {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return Command{Kind: CommandInvalid, Err: matcherrors.ErrMalformedInput}
	case strings.EqualFold(line, tokens.Quit):
		return Command{Kind: CommandQuit}
	case strings.EqualFold(line, tokens.Hint):
		return Command{Kind: CommandHint}
	}

	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Command{Kind: CommandInvalid, Err: fmt.Errorf("%w: got %q", matcherrors.ErrMalformedInput, line)}
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return Command{Kind: CommandInvalid, Err: fmt.Errorf("%w: %q is not an integer", matcherrors.ErrMalformedInput, fields[0])}
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return Command{Kind: CommandInvalid, Err: fmt.Errorf("%w: %q is not an integer", matcherrors.ErrMalformedInput, fields[1])}
	}
	for _, n := range []int{row, col} {
		if n < 1 || n > dim {
			return Command{Kind: CommandInvalid, Err: fmt.Errorf("%w: %d is not between 1 and %d", matcherrors.ErrCoordinateOutOfRange, n, dim)}
		}
	}
	return Command{Kind: CommandCoordinates, Cell: Cell{Row: row - 1, Col: col - 1}}
}
