package model

// Player identifies one side of the clock.
type Player int32

const (
	Player1 Player = iota
	Player2
)

func (player Player) String() string {
	switch player {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}
