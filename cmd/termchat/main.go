// Command termchat is an interactive terminal chat client for LLM APIs.
package main

import "github.com/diogo/termchat/internal/commands"

func main() {
	commands.Execute()
}
