// recast - structured data conversion CLI
//
// Usage:
//
//	recast convert [file]   Convert between notations per directives
//	recast detect [file]    Sniff the input format and print it
//
// Directives come from --settings (a key=value file), the convenience
// flags (--in, --out, --no-align, --case), and repeatable --set pairs,
// later sources overriding earlier ones.
//
// If no file is given, reads from stdin.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Neumenon/recast/recast"
)

var version = "0.1.0"

var (
	verbose      bool
	settingsFile string
	setPairs     []string
	inFormat     string
	outFormat    string
	noAlign      bool
	caseMode     string
)

var rootCmd = &cobra.Command{
	Use:   "recast",
	Short: "Convert structured data between json, yaml, xml, csv, and emmet notations",
	Long: `recast converts structured data between five textual notations:
json, a yaml block notation, xml markup, csv rows, and a compact
emmet-style chain notation. Conversions can rename keys by case
convention and substitute tag names or literal values.`,
}

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert input text per the conversion directives",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConvert,
}

var detectCmd = &cobra.Command{
	Use:   "detect [file]",
	Short: "Sniff the input format and print it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDetect,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the recast version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log resolved formats and settings")

	convertCmd.Flags().StringVarP(&settingsFile, "settings", "s", "", "file with key=value conversion directives")
	convertCmd.Flags().StringArrayVar(&setPairs, "set", nil, "extra key=value directive (repeatable)")
	convertCmd.Flags().StringVar(&inFormat, "in", "", "input format (json, yaml, xml, csv, emmet, auto)")
	convertCmd.Flags().StringVar(&outFormat, "out", "", "output format (json, yaml, xml, csv, emmet)")
	convertCmd.Flags().BoolVar(&noAlign, "no-align", false, "disable pretty-printing")
	convertCmd.Flags().StringVar(&caseMode, "case", "", "key case rewrite (upper, camel, snake, none)")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// readInput returns the file argument's contents, or stdin when no
// argument (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// assembleDirectives builds the directive text handed to the engine.
func assembleDirectives() (string, error) {
	var lines []string

	if settingsFile != "" {
		data, err := os.ReadFile(settingsFile)
		if err != nil {
			return "", fmt.Errorf("read settings: %w", err)
		}
		lines = append(lines, strings.Split(strings.TrimRight(string(data), "\n"), "\n")...)
	}

	if inFormat != "" {
		lines = append(lines, "inputformat="+inFormat)
	}
	if outFormat != "" {
		lines = append(lines, "outputformat="+outFormat)
	}
	if noAlign {
		lines = append(lines, "align=false")
	}
	if caseMode != "" {
		lines = append(lines, "case="+caseMode)
	}
	lines = append(lines, setPairs...)

	return strings.Join(lines, "\n"), nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	input, err := readInput(args)
	if err != nil {
		return err
	}
	directives, err := assembleDirectives()
	if err != nil {
		return err
	}

	res, err := recast.Convert(input, directives)
	if err != nil {
		return err
	}

	logger.Debug("converted",
		"from", res.InputFormat.String(),
		"to", res.OutputFormat.String(),
		"case", res.Settings.Case.String(),
		"align", res.Settings.Align)

	fmt.Fprintln(cmd.OutOrStdout(), res.Output)
	return nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	f := recast.Detect(input)
	if f == recast.FormatUnknown {
		return fmt.Errorf("unable to detect input format")
	}
	fmt.Fprintln(cmd.OutOrStdout(), f.String())
	return nil
}
