// Package ggen writes placeholder PNGs for every asset the texture cache
// requires, so the GUI can run before real artwork exists.
package ggen

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"chessassets/src/cacher"
	"chessassets/src/chess"

	"github.com/fogleman/gg"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/basicfont"
)

const (
	tilePx  = 32 // drawn size, upscaled 2x for a chunky pixel look
	boardPx = 256
)

var kindLetter = map[chess.Kind]string{
	chess.King:   "K",
	chess.Queen:  "Q",
	chess.Rook:   "R",
	chess.Bishop: "B",
	chess.Knight: "N",
	chess.Pawn:   "P",
}

// Generate writes all 15 placeholder assets into dir, creating it if
// needed. Existing files are overwritten.
func Generate(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for _, v := range chess.AllVariants() {
		if err := savePiece(filepath.Join(dir, v.FileName()), v); err != nil {
			return fmt.Errorf("generate %s: %w", v.FileName(), err)
		}
	}

	extras := map[string]func(string) error{
		"board_alt.png": saveBoard,
		"highlight.png": saveHighlight,
		"selected.png":  saveSelected,
	}
	for name, save := range extras {
		if err := save(filepath.Join(dir, name)); err != nil {
			return fmt.Errorf("generate %s: %w", name, err)
		}
	}
	return nil
}

func savePiece(path string, p chess.Piece) error {
	fill := color.RGBA{35, 30, 30, 255}
	label := color.RGBA{230, 225, 215, 255}
	if p.White {
		fill, label = color.RGBA{230, 225, 215, 255}, color.RGBA{35, 30, 30, 255}
	}

	dc := gg.NewContext(tilePx, tilePx)
	dc.SetRGBA255(int(fill.R), int(fill.G), int(fill.B), int(fill.A))
	dc.DrawRoundedRectangle(2, 2, tilePx-4, tilePx-4, 6)
	dc.FillPreserve()
	dc.SetRGBA255(int(label.R), int(label.G), int(label.B), 255)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetRGBA255(int(label.R), int(label.G), int(label.B), 255)
	dc.DrawStringAnchored(kindLetter[p.Kind], tilePx/2, tilePx/2, 0.5, 0.5)

	return gg.SavePNG(path, upscale2x(dc.Image()))
}

func saveBoard(path string) error {
	dc := gg.NewContext(boardPx, boardPx)
	sq := float64(boardPx) / 8
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if (rank+file)%2 == 0 {
				dc.SetRGB255(232, 220, 202)
			} else {
				dc.SetRGB255(140, 106, 86)
			}
			dc.DrawRectangle(float64(file)*sq, float64(rank)*sq, sq, sq)
			dc.Fill()
		}
	}
	return gg.SavePNG(path, dc.Image())
}

func saveHighlight(path string) error {
	dc := gg.NewContext(tilePx*2, tilePx*2)
	dc.SetRGBA255(250, 220, 60, 110)
	dc.DrawRectangle(0, 0, tilePx*2, tilePx*2)
	dc.Fill()
	return gg.SavePNG(path, dc.Image())
}

func saveSelected(path string) error {
	dc := gg.NewContext(tilePx*2, tilePx*2)
	dc.SetRGBA255(70, 190, 90, 200)
	dc.SetLineWidth(4)
	dc.DrawRectangle(2, 2, tilePx*2-4, tilePx*2-4)
	dc.Stroke()
	return gg.SavePNG(path, dc.Image())
}

func upscale2x(src image.Image) image.Image {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*2, b.Dy()*2))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, xdraw.Over, nil)
	return dst
}

// Missing reports which required assets are absent from dir, in load
// order.
func Missing(dir string) []string {
	var missing []string
	for _, name := range cacher.RequiredAssets() {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	return missing
}
