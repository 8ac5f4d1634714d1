package bitboard_test

import (
	"fmt"

	"chess-bitboard/bitboard"
)

func ExampleBitboard_String() {
	bb := bitboard.FromSquares(0, 63)
	fmt.Print(bb)
	// Output:
	// 10000000
	// 00000000
	// 00000000
	// 00000000
	// 00000000
	// 00000000
	// 00000000
	// 00000001
}

func ExampleBitboard_UnionAssign() {
	occupied := bitboard.FromSquare(12)
	occupied.UnionAssign(bitboard.FromSquare(28))
	occupied.SymmetricDifferenceAssign(bitboard.FromSquare(12))
	fmt.Println(occupied.Has(12), occupied.Has(28))
	// Output: false true
}
