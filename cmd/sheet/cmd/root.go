// Package cmd implements the sheet CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (simulate, jump, grid, config).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	sheeterrors "github.com/go-drift/sheet/pkg/errors"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "sheet",
	Short: "Sheet - virtualized axis engine for spreadsheet grids",
	Long: `Sheet drives the virtualized row and column engine of a spreadsheet
grid without a display. It materializes header labels for the visible
part of an axis, scrolls, jumps to items and prints the resulting
geometry.

Use "sheet <command> --help" for more information about a command.`,
	Usage: "sheet [--config PATH] [--verbose] <command> [flags]",
}

var (
	// Commands registered with the CLI, in registration order.
	commands   = make(map[string]*Command)
	registered []*Command

	// out receives command output.
	out io.Writer = os.Stdout

	// configPath is the --config value: a directory or a file.
	configPath string
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	registered = append(registered, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return run(os.Args[1:])
}

func run(args []string) error {
	if len(args) == 0 {
		printHelp()
		return nil
	}

	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp()
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(out, "sheet version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			if len(filteredArgs) == 0 {
				sheeterrors.SetHandler(&sheeterrors.LogHandler{Verbose: true})
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config":
			if len(filteredArgs) > 0 {
				filteredArgs = append(filteredArgs, arg)
				continue
			}
			if i+1 >= len(args) {
				return fmt.Errorf("--config requires a path")
			}
			configPath = args[i+1]
			i++
		default:
			if len(filteredArgs) == 0 && strings.HasPrefix(arg, "--config=") {
				configPath = strings.TrimPrefix(arg, "--config=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp()
		return nil
	}

	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp()
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

func printHelp() {
	fmt.Fprintln(out, rootCmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", rootCmd.Usage)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, sub := range registered {
		fmt.Fprintf(out, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  -h, --help           Show help for a command")
	fmt.Fprintln(out, "  -v, --version        Show version information")
	fmt.Fprintln(out, "  --config PATH        Configuration directory or file (default: ./sheet.yaml or ./sheet.toml)")
	fmt.Fprintln(out, "  --verbose            Log warnings with stack traces")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  sheet simulate -items 100000 -value 5000     Scroll a row header")
	fmt.Fprintln(out, "  sheet jump -align center 75000               Center an item")
	fmt.Fprintln(out, "  sheet grid -rows 1000 -columns 50            Print the visible cells")
	fmt.Fprintln(out, "  sheet config -format toml                    Show the effective configuration")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
}
