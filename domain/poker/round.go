package poker

import (
	"strings"

	"github.com/pterm/pterm"
)

// Match-level constants consumed by the session manager: a match
// ends when one player reaches WinThreshold round wins or after
// MaxRounds rounds, whichever comes first. The engine publishes the
// numbers but never enforces them.
const (
	WinThreshold = 10
	MaxRounds    = 19
)

// Winner identifies which side took a round.
type Winner string

const (
	Player1  Winner = "player1"
	Player2  Winner = "player2"
	NoWinner Winner = "none"
)

// Outcome reports a resolved round: the winning side (NoWinner on a
// tie) and both best hands for display. Outcomes are produced fresh
// per round and never persisted by the engine.
type Outcome struct {
	Winner      Winner
	Player1Hand HandResult
	Player2Hand HandResult
	IsTie       bool
}

// Compare orders two evaluated hands: positive when a beats b,
// negative when b beats a, zero on a tie. Category rank decides
// first; equal categories fall through to the tie-break keys,
// compared left to right until the first difference. The ordering is
// transitive, so independently evaluated hands always agree on a
// showdown no matter which side runs the comparison.
func Compare(a, b HandResult) int {
	if a.Rank != b.Rank {
		return a.Rank - b.Rank
	}
	n := len(a.HighCards)
	if len(b.HighCards) < n {
		n = len(b.HighCards)
	}
	for i := 0; i < n; i++ {
		if d := a.HighCards[i] - b.HighCards[i]; d != 0 {
			return d
		}
	}
	return 0
}

// ResolveRound finds the best hand on each side, compares them and
// reports the round's winner, or a tie when the hands are equal.
func ResolveRound(player1Cards, player2Cards []Card) (Outcome, error) {
	h1, err := BestHand(player1Cards)
	if err != nil {
		return Outcome{}, err
	}
	h2, err := BestHand(player2Cards)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Player1Hand: h1, Player2Hand: h2}
	switch d := Compare(h1, h2); {
	case d > 0:
		out.Winner = Player1
	case d < 0:
		out.Winner = Player2
	default:
		out.Winner = NoWinner
		out.IsTie = true
	}
	return out, nil
}

// PointsAwarded converts a concluded match's win counts into the
// points granted to the match winner: the winner's round wins minus
// the loser's.
func PointsAwarded(winnerWins, loserWins int) int {
	return winnerWins - loserWins
}

// DescribeHand renders a one-line summary of an evaluated hand for
// table display, e.g. "Full House (7♥ 7♦ 7♣ 2♠ 2♦)".
func DescribeHand(h HandResult) string {
	cards := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		cards[i] = c.String()
	}
	return pterm.LightCyan(h.Name) + " (" + strings.Join(cards, " ") + ")"
}
