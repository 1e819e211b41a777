package main

import (
	"os"

	"github.com/thenoetrevino/tablero/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
