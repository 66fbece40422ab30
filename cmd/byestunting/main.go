// Command byestunting is the ByeStunting CLI: offline stunting-risk
// assessment and the API server behind one binary.
package main

import "github.com/byestunting/byestunting/internal/interfaces/cli"

func main() {
	cli.Execute()
}
