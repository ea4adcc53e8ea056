package main

import "github.com/they4kman/gocross/cmd"

func main() {
	cmd.Execute()
}
