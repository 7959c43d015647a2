package main

import "github.com/OpenTraceLab/OpenTraceFootprints/cmd/otf/cmd"

func main() {
	cmd.Execute()
}
