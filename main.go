package main

import "github.com/color-game/schemefinder/cli"

func main() {
	cli.Execute()
}
