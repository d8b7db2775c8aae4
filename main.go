// main is the entry point for the ghpulse CLI.
package main

import (
	"github.com/huangsam/ghpulse/cmd"
	"github.com/huangsam/ghpulse/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Error running ghpulse", err)
	}
}
