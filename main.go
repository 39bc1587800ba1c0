package main

import (
	"fancontrold/cmd"
)

func main() {
	cmd.Execute()
}
