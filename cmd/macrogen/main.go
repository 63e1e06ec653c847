package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"macrogen/pkg/mpp"
)

var version = "0.1.0"

// CLI options
var (
	commentToken string   // --comment, line-comment token introducing directives
	macroGlobs   []string // --macros, glob patterns of macro files to preload
	noHeader     bool     // --no-header, suppress the generated-file banner
)

// isStdInput reports whether the input argument names the standard
// input stream rather than a file.
func isStdInput(name string) bool {
	return name == "-" || name == "stdin"
}

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "macrogen: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "macrogen [input] [output]",
		Short: "macrogen expands comment-embedded macro directives in source text",
		Long: `macrogen is a language-agnostic macro preprocessor. It scans its input
for directives embedded in comments (#define/#end, #import, #macro),
expands them, and writes the rewritten text to the output. Substitution
is literal text replacement: the tool has no notion of the host
language's token boundaries, so a parameter name occurring inside other
identifiers or literals is rewritten too.

Input and output default to the standard streams; "-", "stdin",
"stdout" and "stderr" are accepted as symbolic path aliases.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			output := "-"
			if len(args) > 0 {
				input = args[0]
			}
			if len(args) > 1 {
				output = args[1]
			}
			return doProcess(cmd, input, output, out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().StringVarP(&commentToken, "comment", "c", mpp.DefaultLineComment, "line-comment token that introduces directives")
	rootCmd.Flags().StringArrayVarP(&macroGlobs, "macros", "m", nil, "glob pattern of macro files to preload (repeatable)")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "suppress the generated-file banner")

	return rootCmd
}

// doProcess wires the scanner to the selected streams and runs it.
func doProcess(cmd *cobra.Command, input, output string, out, errOut io.Writer) error {
	w, closeOut, err := openOutput(output, out, errOut)
	if err != nil {
		return err
	}
	if closeOut != nil {
		defer closeOut()
	}

	sc := mpp.NewScanner(w, errOut, mpp.Options{LineComment: commentToken})

	if err := preloadMacros(sc, errOut); err != nil {
		return err
	}

	source := input
	if isStdInput(input) {
		source = ""
	}
	if !noHeader {
		if err := mpp.WriteHeader(w, commentToken, source); err != nil {
			return err
		}
	}

	if source == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		return sc.Process(string(data), "<stdin>")
	}
	return sc.ProcessFile(input)
}

// preloadMacros runs each macro library file through the engine with
// discarded output, merging its definitions into the scanner's table. A
// library may itself import further files.
func preloadMacros(sc *mpp.Scanner, errOut io.Writer) error {
	for _, pattern := range macroGlobs {
		files, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("macro pattern %q: %w", pattern, err)
		}
		if len(files) == 0 {
			fmt.Fprintf(errOut, "warning: macro pattern %q matched no files\n", pattern)
		}
		for _, f := range files {
			lib := mpp.NewScanner(io.Discard, errOut, mpp.Options{LineComment: commentToken})
			if err := lib.ProcessFile(f); err != nil {
				return fmt.Errorf("macro file %s: %w", f, err)
			}
			for _, c := range sc.Macros().Merge(lib.Macros()) {
				fmt.Fprintf(errOut, "warning: macro %s redefined at %s (previous definition at %s)\n",
					c.New.Name, c.New.DefinedAt, c.Old.DefinedAt)
			}
		}
	}
	return nil
}

// openOutput resolves the output argument to a writer. Symbolic names
// select the command's standard streams; anything else creates a file.
func openOutput(name string, out, errOut io.Writer) (io.Writer, func() error, error) {
	switch name {
	case "-", "stdout":
		return out, nil, nil
	case "stderr":
		return errOut, nil, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, fmt.Errorf("creating %s: %w", name, err)
	}
	return f, f.Close, nil
}
