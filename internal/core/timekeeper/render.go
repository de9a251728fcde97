package timekeeper

import (
	"chessclock/internal/core/model"
)

const gameOverMessage = "Game Over!"

func (keeper *TimeKeeper) renderClocksLocked() {
	if keeper.display == nil {
		return
	}
	keeper.display.Clear()
	keeper.display.SetCursor(model.RowTop, 0)
	keeper.display.Print("P1: " + model.FormatClock(keeper.remaining[model.Player1]))
	keeper.display.SetCursor(model.RowBottom, 0)
	keeper.display.Print("P2: " + model.FormatClock(keeper.remaining[model.Player2]))
}

func (keeper *TimeKeeper) renderGameOverLocked() {
	if keeper.display == nil {
		return
	}
	keeper.display.Clear()
	keeper.display.SetCursor(model.RowTop, 0)
	keeper.display.Print(gameOverMessage)
}
