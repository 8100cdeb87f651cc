package main

import (
	"checkrun/cmd"
)

func main() {
	cmd.Execute()
}
