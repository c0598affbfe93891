package main

import "github.com/viacoin/viakey/cmd/viakey/cmd"

func main() {
	cmd.Execute()
}
