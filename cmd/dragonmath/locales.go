package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dragon-math/internal/locale"
)

var localesCmd = &cobra.Command{
	Use:   "locales",
	Short: "List interface languages",
	Long:  `Shows the string tables that can be selected with --lang.`,
	Args:  cobra.NoArgs,
	Run:   runLocales,
}

func runLocales(_ *cobra.Command, _ []string) {
	tables := locale.List()

	fmt.Println("Available languages:")
	fmt.Println()

	maxCodeLen := 4 // "Code" header
	for _, t := range tables {
		maxCodeLen = max(maxCodeLen, len(t.Code))
	}

	maxNameLen := 4 // "Name" header
	for _, t := range tables {
		name := t.Name
		if t.Code == locale.DefaultCode {
			name += " (default)"
		}
		maxNameLen = max(maxNameLen, utf8.RuneCountInString(name))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxCodeLen, "Code", maxNameLen, "Name", "Title")
	fmt.Printf("  %-*s  %-*s  %s\n", maxCodeLen, "----", maxNameLen, "----", "-----")

	for _, t := range tables {
		name := t.Name
		if t.Code == locale.DefaultCode {
			name += " (default)"
		}
		// Codes come from List, so the lookup cannot fail
		title := locale.MustGet(t.Code).Title
		fmt.Printf("  %-*s  %s%s  %s\n", maxCodeLen, t.Code, name,
			strings.Repeat(" ", maxNameLen-utf8.RuneCountInString(name)), title)
	}

	fmt.Println()
	fmt.Println("Run 'dragonmath --lang <code>' to play in that language.")
}
