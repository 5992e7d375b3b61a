package game

import (
	"strconv"
	"strings"

	"memory-game/config"
)

// PrintRules prints the welcome banner and how to play.
func PrintRules(con *Console, r *Renderer, cfg *config.Config) {
	con.Print("\n\n")
	con.Println(r.Title("=================\nWELCOME TO MEMORY\n================="))
	con.Println()
	con.Println("RULES:")
	con.Println()
	con.Println("- Whenever prompted, type the row index and column index--separated by a space--of the card you want to reveal")
	con.Println("- Rows and columns are 1-indexed")
	con.Println("  For example: 1 1 (upper leftmost card)")
	con.Println("               n n (bottom rightmost card on an n by n board)")
	con.Printf("- At any point in the game, enter %s to quit or %s for a hint ;)\n", cfg.QuitToken, cfg.HintToken)
}

// PromptDimension asks for the board size until the player enters an even
// number within the configured range.
func PromptDimension(con *Console, cfg *config.Config) (int, error) {
	con.Println("\n\nBEFORE WE BEGIN... choose how large you want the board to be.")
	con.Println("\nThe game board is an n by n square.")
	for {
		con.Printf("Enter an even number n between %d and %d, inclusive:\n", cfg.MinDimension, cfg.MaxDimension)
		line, err := con.ReadLine()
		if err != nil {
			return 0, err
		}
		dim, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			con.Printf("%q is not a whole number.\n", strings.TrimSpace(line))
			continue
		}
		if err := cfg.CheckDimension(dim); err != nil {
			con.Printf("Invalid board size: %v.\n", err)
			continue
		}
		return dim, nil
	}
}
