// Package bitboard implements the 64-bit square set every other part of the
// engine builds on.
//
// Square s maps to bit 1<<s, with s = rank*8 + file. String prints the word
// most significant bit first, eight bits per line: square 63 is the first
// character of the first line and square 0 the last character of the last.
package bitboard

import (
	"fmt"
	"strings"
)

// Bitboard is a set of squares, one bit per square.
type Bitboard uint64

const (
	// Empty has no squares set.
	Empty Bitboard = 0
	// Full has all 64 squares set.
	Full Bitboard = ^Empty
)

// FromSquare returns a board with only sq set.
// sq must be in 0-63; larger values shift out of the word and yield Empty.
func FromSquare(sq Square) Bitboard {
	return Bitboard(1) << sq
}

// FromSquares returns the union of FromSquare over squares. Duplicates are harmless.
func FromSquares(squares ...Square) Bitboard {
	var bb Bitboard
	for _, sq := range squares {
		bb |= Bitboard(1) << sq
	}
	return bb
}

// FromSquaresChecked is FromSquares with range checking.
func FromSquaresChecked(squares ...Square) (Bitboard, error) {
	for _, sq := range squares {
		if !sq.Valid() {
			return Empty, fmt.Errorf("%w: %d", ErrInvalidSquare, sq)
		}
	}
	return FromSquares(squares...), nil
}

// Bits returns the underlying word.
func (b Bitboard) Bits() uint64 { return uint64(b) }

// Has reports whether sq is set. Squares outside 0-63 are never set.
func (b Bitboard) Has(sq Square) bool {
	return b&(Bitboard(1)<<sq) != 0
}

// Complement returns the board with every bit flipped.
func (b Bitboard) Complement() Bitboard { return ^b }

// Union returns the squares set in b or o.
func (b Bitboard) Union(o Bitboard) Bitboard { return b | o }

// Intersect returns the squares set in both b and o.
func (b Bitboard) Intersect(o Bitboard) Bitboard { return b & o }

// SymmetricDifference returns the squares set in exactly one of b and o.
func (b Bitboard) SymmetricDifference(o Bitboard) Bitboard { return b ^ o }

// UnionAssign sets *b to b | o.
func (b *Bitboard) UnionAssign(o Bitboard) { *b |= o }

// IntersectAssign sets *b to b & o.
func (b *Bitboard) IntersectAssign(o Bitboard) { *b &= o }

// SymmetricDifferenceAssign sets *b to b ^ o.
func (b *Bitboard) SymmetricDifferenceAssign(o Bitboard) { *b ^= o }

// String renders the board as eight lines of '0'/'1', rank 7 first and
// file 7 leftmost within each line.
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.Grow(8 * 9)
	for rank := 7; rank >= 0; rank-- {
		for file := 7; file >= 0; file-- {
			if b.Has(SquareAt(rank, file)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
