package main

import "github.com/dothrak/Portfolio-2.0/cmd"

func main() {
	cmd.Execute()
}
