package cli

import (
	"fmt"
	"io"
	"sort"

	"chessassets/src/cacher"
	"chessassets/src/chess"
)

// ANSI-code
const (
	reset  = "\033[0m"
	greenF = "\033[32m"
	redF   = "\033[31m"
	dimF   = "\033[90m"
	boldF  = "\033[1m"
)

// Piece -> unicode glyph
func pieceGlyph(p chess.Piece) string {
	if p.White {
		switch p.Kind {
		case chess.King:
			return "♔"
		case chess.Queen:
			return "♕"
		case chess.Rook:
			return "♖"
		case chess.Bishop:
			return "♗"
		case chess.Knight:
			return "♘"
		case chess.Pawn:
			return "♙"
		}
	}
	switch p.Kind {
	case chess.King:
		return "♚"
	case chess.Queen:
		return "♛"
	case chess.Rook:
		return "♜"
	case chess.Bishop:
		return "♝"
	case chess.Knight:
		return "♞"
	case chess.Pawn:
		return "♟"
	}
	return "?"
}

// PrintVariants writes the twelve piece variants in cache-load order and
// in comparison order, with their derived asset file names.
func PrintVariants(out io.Writer) {
	variants := chess.AllVariants()

	fmt.Fprintf(out, "\n%sload order%s\n", boldF, reset)
	for i, v := range variants {
		fmt.Fprintf(out, "%2d  %s %-13s %s%s%s\n", i, pieceGlyph(v), v, dimF, v.FileName(), reset)
	}

	sorted := make([]chess.Piece, len(variants))
	copy(sorted, variants)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })

	fmt.Fprintf(out, "\n%ssorted (black first, pawn lowest)%s\n", boldF, reset)
	for i, v := range sorted {
		fmt.Fprintf(out, "%2d  %s %s\n", i, pieceGlyph(v), v)
	}
}

// PrintCheck writes one line per required asset: green OK or red FAIL.
// failed is the logical name of the first asset that failed to load,
// empty when everything loaded. Nothing after the first failure was
// attempted, so nothing after it is printed.
func PrintCheck(out io.Writer, dir string, failed string, cause error) {
	fmt.Fprintf(out, "\nassets: %s\n", dir)
	for _, name := range cacher.RequiredAssets() {
		if failed != "" && name == failed {
			fmt.Fprintf(out, "  %sFAIL%s  %s: %v\n", redF, reset, name, cause)
			return
		}
		fmt.Fprintf(out, "  %sOK%s    %s\n", greenF, reset, name)
	}
}
