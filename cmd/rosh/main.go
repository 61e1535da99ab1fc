package main

import (
	"github.com/halfgrim/roshambo/internal/cli"
)

func main() {
	cli.Execute()
}
