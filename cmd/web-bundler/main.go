package main

import "github.com/tonsuu/web-bundler/cmd/web-bundler/cmd"

func main() {
	cmd.Execute()
}
