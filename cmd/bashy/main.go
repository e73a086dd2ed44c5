package main

import "github.com/ameerdhi7/bashy/internal/cli"

func main() {
	cli.Execute()
}
