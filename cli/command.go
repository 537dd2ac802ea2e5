package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/abiiranathan/minigrep/search"
	"github.com/spf13/cobra"
)

// NewCommand returns the root command: minigrep <query> <filename>.
// Flag parsing is disabled so that every argument, including ones starting
// with a dash, reaches Resolve unchanged.
func NewCommand(lookup LookupFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:                "minigrep <query> <filename>",
		Short:              "Print the lines of a file that contain a query",
		Long:               "Print the lines of a file that contain a query.\nSet CASE_INSENSITIVE to ignore case.",
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			args = append([]string{cmd.Name()}, args...)

			config, err := Resolve(args, CaseInsensitive(lookup))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Searching for %s\n", config.Query)
			fmt.Fprintf(out, "In file %s\n", config.Filename)
			return Run(config, out)
		},
	}
	return cmd
}

// Run reads the configured file and writes the matching lines to w, one per line.
// Nothing is written if the file cannot be read.
func Run(config Config, w io.Writer) error {
	contents, err := search.ReadContents(config.Filename)
	if err != nil {
		return err
	}

	for _, line := range search.Find(config.Query, contents, config.CaseSensitive) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Describe prefixes err with the category shown to the user.
func Describe(err error) string {
	if errors.Is(err, ErrNotEnoughArguments) {
		return fmt.Sprintf("Problem parsing arguments: %v", err)
	}
	return fmt.Sprintf("Application error: %v", err)
}
