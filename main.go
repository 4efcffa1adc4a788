// minchess - click-to-move chess against a random opponent, built with
// Ebitengine. No castling, no en passant; promotion is always a queen.
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/MasterPandaa/minchess/internal/ui"
)

func main() {
	game := ui.NewGame()
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("minchess")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
