package main

import "github.com/obedfeni/dailytrivia/internal/cli"

func main() {
	cli.Execute()
}
