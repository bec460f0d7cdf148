package main

import (
	"os"

	"github.com/thenoetrevino/pgsetup/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
