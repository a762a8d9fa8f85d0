package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-narrator/internal/menu"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List all known menu modes",
	Long:  `Shows every menu mode id the narrator recognizes and the label it announces.`,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := menu.Modes()

	fmt.Println("Known menu modes:")
	fmt.Println()
	fmt.Printf("  %-5s  %s\n", "ID", "Label")
	fmt.Printf("  %-5s  %s\n", "--", "-----")
	for _, m := range modes {
		fmt.Printf("  %-5d  %s\n", int(m.Mode), m.Label)
	}

	fmt.Println()
	fmt.Println("Unknown modes are announced as \"Mode <id>\".")
}
