package main

import "github.com/alexiusacademia/golam/cmd"

func main() {
	cmd.Execute()
}
