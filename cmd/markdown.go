package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// printMarkdown renders markdown for the terminal, falling back to the raw
// source when stdout is not a terminal or the renderer fails.
func printMarkdown(source string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(source)
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(source)
		return
	}
	out, err := r.Render(source)
	if err != nil {
		fmt.Println(source)
		return
	}
	fmt.Print(out)
}
