package poker

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// Suit identifies one of the four card suits.
type Suit uint8

// Card suit constants, in the deck's canonical suit order.
const (
	Club    Suit = iota // ♣ (black)
	Diamond             // ♦ (red)
	Heart               // ♥ (red)
	Spade               // ♠ (black)
)

// Rank identifies a card rank. The numeric value of a Rank is its
// comparison value: 2 through 10 for the spot cards, 11-13 for the
// faces and 14 for the ace. The ace counts low only inside the wheel
// straight (A-2-3-4-5).
type Rank uint8

// Card rank constants.
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Suits and Ranks enumerate the deck axes in canonical order.
var (
	Suits = []Suit{Club, Diamond, Heart, Spade}
	Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}
)

// Value returns the rank's comparison value, 2-14 with the ace high.
func (r Rank) Value() int {
	return int(r)
}

// ErrInvalidCardToken reports a malformed card token passed to
// ParseCard or ParseHand.
var ErrInvalidCardToken = errors.New("invalid card token")

// Card represents a playing card with suit and rank. The zero value
// is not a valid card; build cards with NewCard or ParseCard.
type Card struct {
	suit Suit
	rank Rank
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: Club, Diamond, Heart or Spade
//   - rank: Two through Ten, Jack, Queen, King or Ace
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit Suit, rank Rank) (Card, error) {
	if suit > Spade || rank < Two || rank > Ace {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// Suit returns the suit of the Card.
func (c Card) Suit() Suit {
	return c.suit
}

// Rank returns the rank of the Card.
func (c Card) Rank() Rank {
	return c.rank
}

func (r Rank) token() string {
	switch r {
	case Ace:
		return "A"
	case King:
		return "K"
	case Queen:
		return "Q"
	case Jack:
		return "J"
	default:
		return strconv.Itoa(int(r))
	}
}

func (s Suit) letter() string {
	switch s {
	case Club:
		return "C"
	case Diamond:
		return "D"
	case Heart:
		return "H"
	default:
		return "S"
	}
}

// Token returns the card's serialized form, the upper-case rank
// token followed by the suit initial, e.g. "10H" or "AS". This is
// the format hands travel in between the engine and its callers.
func (c Card) Token() string {
	return c.rank.token() + c.suit.letter()
}

// ParseCard parses a two or three character card token produced by
// Token. Input is case-insensitive. Unknown rank tokens or suit
// letters fail with ErrInvalidCardToken.
func ParseCard(token string) (Card, error) {
	t := strings.ToUpper(strings.TrimSpace(token))
	if len(t) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardToken, token)
	}

	var suit Suit
	switch t[len(t)-1] {
	case 'C':
		suit = Club
	case 'D':
		suit = Diamond
	case 'H':
		suit = Heart
	case 'S':
		suit = Spade
	default:
		return Card{}, fmt.Errorf("%w: unknown suit in %q", ErrInvalidCardToken, token)
	}

	var rank Rank
	switch rt := t[:len(t)-1]; rt {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	default:
		n, err := strconv.Atoi(rt)
		if err != nil || n < 2 || n > 10 {
			return Card{}, fmt.Errorf("%w: unknown rank in %q", ErrInvalidCardToken, token)
		}
		rank = Rank(n)
	}

	return Card{suit: suit, rank: rank}, nil
}

// ParseHand parses a serialized hand, failing on the first bad token.
func ParseHand(tokens []string) ([]Card, error) {
	cards := make([]Card, len(tokens))
	for i, t := range tokens {
		c, err := ParseCard(t)
		if err != nil {
			return nil, err
		}
		cards[i] = c
	}
	return cards, nil
}

// Tokens serializes a hand into its wire form.
func Tokens(cards []Card) []string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.Token()
	}
	return tokens
}

// String returns a human-readable representation of the Card using
// suit symbols (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or
// number). Unlike Token, this form is for table display only.
func (c Card) String() string {
	var suit string
	switch c.suit {
	case Club:
		suit = pterm.Black("♣")
	case Diamond:
		suit = pterm.LightRed("♦")
	case Heart:
		suit = pterm.LightRed("♥")
	case Spade:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	return c.rank.token() + suit
}
