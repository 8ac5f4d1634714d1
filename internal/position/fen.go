package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// parseFen is swapped out in tests to reach the recover path in Load.
var parseFen = dragontoothmg.ParseFen

// validateFEN checks the fields dragontoothmg would otherwise read leniently.
// fields must already hold 4-6 entries.
func validateFEN(fields []string) error {
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				file++
			default:
				return fmt.Errorf("%w: unrecognized character %q in rank %d", ErrInvalidFEN, ch, 8-i)
			}
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d covers %d files", ErrInvalidFEN, 8-i, file)
		}
	}

	if fields[1] != "w" && fields[1] != "b" {
		return fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}

	if castling := fields[2]; castling != "-" {
		seen := map[rune]bool{}
		for _, ch := range castling {
			if !strings.ContainsRune("KQkq", ch) || seen[ch] {
				return fmt.Errorf("%w: castling rights %q", ErrInvalidFEN, castling)
			}
			seen[ch] = true
		}
	}

	if ep := fields[3]; ep != "-" {
		if len(ep) != 2 || ep[0] < 'a' || ep[0] > 'h' || (ep[1] != '3' && ep[1] != '6') {
			return fmt.Errorf("%w: en passant square %q", ErrInvalidFEN, ep)
		}
	}

	for _, counter := range fields[4:] {
		if n, err := strconv.Atoi(counter); err != nil || n < 0 {
			return fmt.Errorf("%w: move counter %q", ErrInvalidFEN, counter)
		}
	}
	return nil
}
