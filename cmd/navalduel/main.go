package main

import "navalduel/internal/cli"

func main() {
	cli.Execute()
}
