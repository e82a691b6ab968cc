// Package main is the entry point for the farscape CLI tool.
package main

import (
	"github.com/FidelityFramework/Farscape/internal/cmd"
)

func main() {
	cmd.Execute()
}
