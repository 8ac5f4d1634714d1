// Package position reads FEN positions through dragontoothmg and exposes
// their piece sets as bitboard.Bitboard values.
package position

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"chess-bitboard/bitboard"
)

// StartPos is the FEN of the standard initial position.
const StartPos = dragontoothmg.Startpos

var (
	// ErrInvalidFEN is returned by Load for any malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN")
	// ErrUnknownSide is returned by ParseSide for names other than white/black/both.
	ErrUnknownSide = errors.New("unknown side")
	// ErrUnknownKind is returned by ParseKind, and by Mobility for non-slider kinds.
	ErrUnknownKind = errors.New("unknown piece kind")
)

// Side selects whose pieces to read.
type Side uint8

const (
	White Side = iota
	Black
	Both
)

// Kind is a colorless piece type.
type Kind uint8

const (
	AnyKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// ParseSide maps "white", "black", "both" (or "w", "b", "all") to a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	case "both", "all", "":
		return Both, nil
	}
	return Both, fmt.Errorf("%w: %q", ErrUnknownSide, s)
}

// ParseKind maps a piece name or its FEN letter to a Kind. The empty string is AnyKind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "all":
		return AnyKind, nil
	case "pawn", "p":
		return Pawn, nil
	case "knight", "n":
		return Knight, nil
	case "bishop", "b":
		return Bishop, nil
	case "rook", "r":
		return Rook, nil
	case "queen", "q":
		return Queen, nil
	case "king", "k":
		return King, nil
	}
	return AnyKind, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Position wraps a parsed dragontoothmg board.
type Position struct {
	board dragontoothmg.Board
}

// Load parses fen. The placement, side, castling, en passant and counter
// fields are validated before dragontoothmg sees them, since its parser
// accepts many malformed strings silently. Any panic from the parser is
// recovered and reported as ErrInvalidFEN as well.
func Load(fen string) (pos *Position, err error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fmt.Errorf("%w: expected 4-6 fields, got %d", ErrInvalidFEN, len(fields))
	}
	if err := validateFEN(fields); err != nil {
		return nil, err
	}
	if len(fields) == 4 {
		// dragontoothmg requires the move counters.
		fields = append(fields, "0", "1")
	} else if len(fields) == 5 {
		fields = append(fields, "1")
	}

	defer func() {
		if r := recover(); r != nil {
			pos, err = nil, fmt.Errorf("%w: %v", ErrInvalidFEN, r)
		}
	}()
	return &Position{board: parseFen(strings.Join(fields, " "))}, nil
}

// WhiteToMove reports the side to move.
func (p *Position) WhiteToMove() bool { return p.board.Wtomove }

func bitboardsOf(bbs dragontoothmg.Bitboards, kind Kind) bitboard.Bitboard {
	switch kind {
	case Pawn:
		return bitboard.Bitboard(bbs.Pawns)
	case Knight:
		return bitboard.Bitboard(bbs.Knights)
	case Bishop:
		return bitboard.Bitboard(bbs.Bishops)
	case Rook:
		return bitboard.Bitboard(bbs.Rooks)
	case Queen:
		return bitboard.Bitboard(bbs.Queens)
	case King:
		return bitboard.Bitboard(bbs.Kings)
	default:
		return bitboard.Bitboard(bbs.All)
	}
}

// Pieces returns the squares holding pieces of the given kind for side.
func (p *Position) Pieces(side Side, kind Kind) bitboard.Bitboard {
	switch side {
	case White:
		return bitboardsOf(p.board.White, kind)
	case Black:
		return bitboardsOf(p.board.Black, kind)
	default:
		return bitboardsOf(p.board.White, kind).Union(bitboardsOf(p.board.Black, kind))
	}
}

// Occupancy returns every occupied square for side.
func (p *Position) Occupancy(side Side) bitboard.Bitboard {
	return p.Pieces(side, AnyKind)
}

// RookAttacks returns the squares a rook on sq would reach, stopping at (and
// including) the first blocker of either color. Squares outside 0-63 yield Empty.
func (p *Position) RookAttacks(sq bitboard.Square) bitboard.Bitboard {
	if !sq.Valid() {
		return bitboard.Empty
	}
	occ := p.Occupancy(Both).Bits()
	return bitboard.Bitboard(dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ))
}

// BishopAttacks is RookAttacks for diagonals.
func (p *Position) BishopAttacks(sq bitboard.Square) bitboard.Bitboard {
	if !sq.Valid() {
		return bitboard.Empty
	}
	occ := p.Occupancy(Both).Bits()
	return bitboard.Bitboard(dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ))
}

// QueenAttacks is the union of RookAttacks and BishopAttacks.
func (p *Position) QueenAttacks(sq bitboard.Square) bitboard.Bitboard {
	return p.RookAttacks(sq).Union(p.BishopAttacks(sq))
}

// Mobility returns the attack set of a slider on sq minus squares held by
// friendly pieces of side.
func (p *Position) Mobility(sq bitboard.Square, kind Kind, side Side) (bitboard.Bitboard, error) {
	if !sq.Valid() {
		return bitboard.Empty, fmt.Errorf("%w: %d", bitboard.ErrInvalidSquare, sq)
	}
	var attacks bitboard.Bitboard
	switch kind {
	case Rook:
		attacks = p.RookAttacks(sq)
	case Bishop:
		attacks = p.BishopAttacks(sq)
	case Queen:
		attacks = p.QueenAttacks(sq)
	default:
		return bitboard.Empty, fmt.Errorf("%w: %d is not a slider", ErrUnknownKind, kind)
	}
	if side != Both {
		attacks.IntersectAssign(p.Occupancy(side).Complement())
	}
	return attacks, nil
}
