// Command citeview displays assistant answers with numbered citations.
package main

import "github.com/diogo/citeview/internal/commands"

func main() {
	commands.Execute()
}
