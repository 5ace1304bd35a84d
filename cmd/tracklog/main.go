package main

import (
	"github.com/rsorensen/tracklog/internal/cli"
)

func main() {
	cli.Main()
}
