package main

import "github.com/gaidukev/Water-Puzzle-Solver/cmd"

func main() {
	cmd.Execute()
}
