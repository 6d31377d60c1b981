package main

import "github.com/borkshop/quadrant/internal/cli"

func main() {
	cli.Execute()
}
