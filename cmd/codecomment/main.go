package main

import "codecomment/cmd/codecomment/commands"

func main() {
	commands.Execute()
}
