package main

import "github.com/alexiusacademia/goshore/cmd"

func main() {
	cmd.Execute()
}
