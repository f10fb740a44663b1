// Package cmd implements the iconfont CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (resolve, states, render, demo).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/iconfont/pkg/errors"
	"go.uber.org/zap"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "iconfont",
	Short: "iconfont - state-dependent icon font glyphs",
	Long: `iconfont resolves glyph codes and colors from state-list selectors and
renders icon font glyphs for every view state.

Use "iconfont <command> --help" for more information about a command.`,
	Usage: "iconfont <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// Standard streams, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// logger is the CLI's structured logger. Execute replaces the no-op default.
var logger = zap.NewNop().Sugar()

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the given arguments.
func Execute() error {
	args := os.Args[1:]

	verbose := os.Getenv("LOG_LEVEL") == "debug"
	var filteredArgs []string
	for _, arg := range args {
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "iconfont version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--verbose":
			verbose = true
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	flush, err := setupLogging(verbose)
	if err != nil {
		return err
	}
	defer flush()

	return run(args)
}

func run(args []string) error {
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	logger.Debugw("running command", "command", cmd.Name, "args", cmdArgs)
	return cmd.Run(cmdArgs)
}

// setupLogging installs a development zap logger as the CLI logger and as
// the error report sink.
func setupLogging(verbose bool) (func(), error) {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableStacktrace = !verbose
	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger = l.Sugar()
	errors.SetHandler(errors.NewZapHandler(logger))
	return func() { _ = l.Sync() }, nil
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --verbose            Enable debug logging")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Environment:")
	fmt.Fprintln(stdout, "  LOG_LEVEL=debug      Same as --verbose")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  iconfont resolve star.xml selected   Resolve a selector for a state")
	fmt.Fprintln(stdout, "  iconfont render --out build/icons     Render configured icons to PNG")
	fmt.Fprintln(stdout, "  iconfont demo                         Toggle icon states interactively")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}

// flagValue returns the value following args[i], or an error naming flag.
func flagValue(args []string, i int, flag string) (string, error) {
	if i+1 >= len(args) {
		return "", fmt.Errorf("%s requires a value", flag)
	}
	return args[i+1], nil
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, "--")
}
