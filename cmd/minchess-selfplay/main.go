// minchess-selfplay plays random-vs-random games headlessly. It is a
// smoke harness for the board engine: every game must stay legal from
// the first move to checkmate, stalemate, or the ply cap.
//
// Without repetition or 50-move draw rules a random game can shuffle
// pieces forever, so games stop at -maxplies and count as unfinished.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/MasterPandaa/minchess/internal/board"
	"github.com/MasterPandaa/minchess/internal/engine"
)

var (
	games    = flag.Int("games", 10, "number of games to play")
	seed     = flag.Int64("seed", 1, "random seed for the move policy")
	maxPlies = flag.Int("maxplies", 600, "abandon a game after this many plies")
	verbose  = flag.Bool("v", false, "print every move")
)

func main() {
	flag.Parse()

	policy := engine.NewRandom(*seed)

	var mates, stales, unfinished int
	for i := 0; i < *games; i++ {
		outcome, winner, plies := playGame(policy)

		switch outcome {
		case board.Checkmate:
			mates++
			fmt.Printf("game %d: checkmate, %v wins in %d plies\n", i+1, winner, plies)
		case board.Stalemate:
			stales++
			fmt.Printf("game %d: stalemate in %d plies\n", i+1, plies)
		default:
			unfinished++
			fmt.Printf("game %d: unfinished after %d plies\n", i+1, plies)
		}
	}

	fmt.Printf("\n%d games: %d checkmates, %d stalemates, %d unfinished\n",
		*games, mates, stales, unfinished)
}

func playGame(policy engine.Policy) (board.Outcome, board.Color, int) {
	pos := board.NewPosition()

	for ply := 0; ply < *maxPlies; ply++ {
		if pos.Outcome != board.NoOutcome {
			return pos.Outcome, pos.Winner, ply
		}

		side := pos.SideToMove
		m := policy.ChooseMove(pos, side)
		if m == board.NoMove {
			log.Fatalf("ply %d: no move but outcome is %v\n%v", ply, pos.Outcome, pos)
		}

		pos.MakeMove(m)

		if pos.InCheck(side) {
			log.Fatalf("ply %d: move %v left %v in check\n%v", ply, m, side, pos)
		}
		if err := pos.Validate(); err != nil {
			log.Fatalf("ply %d: %v\n%v", ply, err, pos)
		}

		if *verbose {
			fmt.Printf("%3d. %v %v\n", pos.FullMoveNumber, side, m)
		}
	}

	return pos.Outcome, pos.Winner, *maxPlies
}
