package main

import "github.com/kamusis/partner-cli/cmd"

func main() {
	cmd.Execute()
}
