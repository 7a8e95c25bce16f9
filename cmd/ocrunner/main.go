package main

import "github.com/OpenChemistry/ocrunner/pkg/cli"

func main() {
	cli.Execute()
}
