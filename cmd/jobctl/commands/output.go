package commands

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// output renders pterm elements into the command's writer so that
// cmd.SetOut redirects everything a command prints.
type output struct {
	w io.Writer
}

func newOutput(cmd *cobra.Command) output {
	return output{w: cmd.OutOrStdout()}
}

func (o output) printf(format string, a ...interface{}) {
	fmt.Fprintf(o.w, format, a...)
}

func (o output) println(a ...interface{}) {
	fmt.Fprintln(o.w, a...)
}

func (o output) section(level int, title string) {
	fmt.Fprint(o.w, pterm.DefaultSection.WithLevel(level).Sprintln(title))
}

func (o output) info(format string, a ...interface{}) {
	fmt.Fprint(o.w, pterm.Info.Sprintfln(format, a...))
}

func (o output) warning(msg string) {
	fmt.Fprint(o.w, pterm.Warning.Sprintln(msg))
}

func (o output) table(data pterm.TableData) error {
	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(o.w, rendered)
	return nil
}

func (o output) list(title string, items []string) {
	if len(items) == 0 {
		return
	}
	o.section(2, title)
	for _, item := range items {
		o.println("  • " + item)
	}
}
