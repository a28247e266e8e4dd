package main

import (
	"github.com/dave-shawley/coercion/internal/cmd"
)

func main() {
	cmd.Execute()
}
