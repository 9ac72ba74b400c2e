package main

import "github.com/alexiusacademia/gospar/cmd"

func main() {
	cmd.Execute()
}
