package bitboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrInvalidSquare is returned when a square index or name falls outside the board.
var ErrInvalidSquare = errors.New("invalid square")

// Square represents a board position (0-63), indexed as rank*8 + file.
type Square uint8

// NumSquares is the number of squares on the board.
const NumSquares = 64

// SquareAt returns the square at the given rank and file (both 0-7).
// A rank or file outside 0-7 yields Square(NumSquares), which is not Valid.
func SquareAt[T constraints.Integer](rank, file T) Square {
	if rank < 0 || rank > 7 || file < 0 || file > 7 {
		return Square(NumSquares)
	}
	return Square(rank*8 + file)
}

// Rank returns the square's rank (0-7).
func (s Square) Rank() int { return int(s) / 8 }

// File returns the square's file (0-7).
func (s Square) File() int { return int(s) % 8 }

// Valid reports whether s is within 0-63.
func (s Square) Valid() bool { return s < NumSquares }

// String returns the algebraic name of the square (0 -> "a1", 63 -> "h8").
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

// ParseSquare accepts either an algebraic name ("e4") or a decimal index ("28").
func ParseSquare(str string) (Square, error) {
	str = strings.TrimSpace(strings.ToLower(str))
	if len(str) == 2 && str[0] >= 'a' && str[0] <= 'h' && str[1] >= '1' && str[1] <= '8' {
		return SquareAt(int(str[1]-'1'), int(str[0]-'a')), nil
	}
	n, err := strconv.Atoi(str)
	if err != nil || n < 0 || n >= NumSquares {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSquare, str)
	}
	return Square(n), nil
}
