package main

import "github.com/ElectronicKiwi/kolibri/cmd/kolibri-sim/cmd"

func main() {
	cmd.Execute()
}
