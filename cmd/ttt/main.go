// Command ttt is the short alias of tokentrack.
package main

import (
	"tokentrack/cmd"
)

var version = "dev"

func main() {
	cmd.SetCommandName("ttt")
	cmd.SetVersion(version)
	cmd.Execute()
}
