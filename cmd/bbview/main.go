package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/slices"

	"chess-bitboard/bitboard"
	"chess-bitboard/internal/position"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// parseSquareList splits a comma/space separated list, sorts it and drops duplicates.
func parseSquareList(list string) ([]bitboard.Square, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool { return r == ',' || r == ' ' })
	squares := make([]bitboard.Square, 0, len(fields))
	for _, f := range fields {
		sq, err := bitboard.ParseSquare(f)
		if err != nil {
			return nil, err
		}
		squares = append(squares, sq)
	}
	slices.Sort(squares)
	return slices.Compact(squares), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bbview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	squares := fs.String("squares", "", "Comma separated squares to set (e.g. a1,h8,12)")
	fen := fs.String("fen", "", "FEN string to read occupancy from (defaults to initial position when -side/-piece/-attacks is used)")
	sideName := fs.String("side", "both", "Side for FEN occupancy: white, black or both")
	pieceName := fs.String("piece", "", "Restrict FEN occupancy to one piece kind (pawn..king)")
	attacks := fs.String("attacks", "", "Square of a slider whose attack set to show")
	slider := fs.String("slider", "rook", "Slider kind for -attacks: rook, bishop or queen")
	mask := fs.String("mask", "", "Comma separated squares to intersect the result with")
	invert := fs.Bool("invert", false, "Complement the result before printing")
	raw := fs.Bool("hex", false, "Also print the word in hex")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	fail := func(format string, a ...interface{}) int {
		fmt.Fprintf(stderr, "error: "+format+"\n", a...)
		return 2
	}

	var result bitboard.Bitboard
	usedFEN := *fen != "" || *attacks != "" || *pieceName != "" || *sideName != "both"
	if *squares != "" {
		list, err := parseSquareList(*squares)
		if err != nil {
			return fail("-squares: %v", err)
		}
		bb, err := bitboard.FromSquaresChecked(list...)
		if err != nil {
			return fail("-squares: %v", err)
		}
		names := make([]string, len(list))
		for i, sq := range list {
			names[i] = sq.String()
		}
		fmt.Fprintf(stdout, "squares: %s\n", strings.Join(names, " "))
		result.UnionAssign(bb)
	}

	if usedFEN {
		if *fen == "" {
			*fen = position.StartPos
		}
		pos, err := position.Load(*fen)
		if err != nil {
			return fail("-fen: %v", err)
		}
		if *attacks != "" {
			sq, err := bitboard.ParseSquare(*attacks)
			if err != nil {
				return fail("-attacks: %v", err)
			}
			kind, err := position.ParseKind(*slider)
			if err != nil {
				return fail("-slider: %v", err)
			}
			side, err := position.ParseSide(*sideName)
			if err != nil {
				return fail("-side: %v", err)
			}
			bb, err := pos.Mobility(sq, kind, side)
			if err != nil {
				return fail("-slider: %v", err)
			}
			result.UnionAssign(bb)
		} else {
			side, err := position.ParseSide(*sideName)
			if err != nil {
				return fail("-side: %v", err)
			}
			kind, err := position.ParseKind(*pieceName)
			if err != nil {
				return fail("-piece: %v", err)
			}
			result.UnionAssign(pos.Pieces(side, kind))
		}
	}

	if *mask != "" {
		list, err := parseSquareList(*mask)
		if err != nil {
			return fail("-mask: %v", err)
		}
		result.IntersectAssign(bitboard.FromSquares(list...))
	}
	if *invert {
		result = result.Complement()
	}

	if *raw {
		fmt.Fprintf(stdout, "0x%016x\n", result.Bits())
	}
	fmt.Fprint(stdout, result.String())
	return 0
}
