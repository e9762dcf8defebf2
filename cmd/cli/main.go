// recipemd - recipe markdown parser and formatter
//
// recipemd converts plain-text recipe documents into structured recipes and
// renders structured recipes back into canonical recipe markdown.
package main

import (
	"os"

	"github.com/ccollicutt/recipemd/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
