// Package poker implements the deterministic core of a two-player
// seven-card draw variant: standard deck construction, seeded
// dealing, the discard/redraw phase, five-to-seven-card hand
// evaluation and round resolution.
//
// # Determinism
//
// Every operation is a pure function of its inputs. Dealing is
// driven by a caller-supplied seed string; two processes sharing a
// seed agree on both hands and the replacement reserve without
// exchanging any deck state.
//
// # Hand Evaluation
//
// Evaluate classifies a set of at least five cards into one of ten
// categories, from high card up to royal flush, each carrying an
// ordered tie-break key sequence. BestHand searches every five-card
// subset of a seven-card hand for the strongest one. Compare is a
// strict weak ordering over evaluated hands, so two independent
// evaluations of the same cards always agree on the result of a
// showdown.
//
// # Collaborators
//
// The package is consumed by an external game-session manager, which
// owns turn legality, match bookkeeping and transport. Hands cross
// that boundary as short card tokens such as "10H" and "AS";
// ParseCard and Card.Token convert both ways.
package poker
