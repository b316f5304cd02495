package main

import "github.com/KaramelBytes/pairstats/cmd"

func main() {
	cmd.Execute()
}
