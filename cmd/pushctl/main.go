package main

import (
	"os"

	"pushcampaign/cmd/pushctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
