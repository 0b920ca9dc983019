package main

import (
	"fmt"

	"chessassets/ui"
)

func main() {
	if err := ui.RunChessAssets(); err != nil {
		fmt.Println(err)
	}
}
