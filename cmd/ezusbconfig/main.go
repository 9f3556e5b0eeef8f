// Command ezusbconfig inspects EZ-USB hardware configuration files.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// configEnv names the environment variable holding the default
// configuration path. It may also be set from a .env file.
const configEnv = "EZUSB_CONFIG"

type command struct {
	usage       string
	description string
	minArgs     int
	run         func(env *environment, args []string) int
}

var knownCommands = map[string]command{
	"check": {
		description: "report every problem in the configuration",
		run:         runCheck,
	},
	"list": {
		description: "print the hex loader and every device",
		run:         runList,
	},
	"lookup": {
		usage:       "<product-id>",
		description: "print the firmware for a cold-boot product id",
		minArgs:     1,
		run:         runLookup,
	},
	"verify": {
		description: "parse the hex loader and every firmware image",
		run:         runVerify,
	},
}

// environment is what every command runs with.
type environment struct {
	configPath  string
	output      string
	firmwareDir string
	log         *logrus.Logger
	stdout      io.Writer
	stderr      io.Writer
}

func main() {
	// A missing .env file is the normal case.
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flagSet := pflag.NewFlagSet("ezusbconfig", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.Usage = func() { usage(flagSet, stderr) }

	configPath := flagSet.StringP("config", "c", os.Getenv(configEnv), "hardware configuration property list (default $"+configEnv+")")
	output := flagSet.StringP("output", "o", "text", "output format: text or yaml")
	firmwareDir := flagSet.String("firmware-dir", "", "directory firmware paths are relative to (default: the configuration's directory)")
	logLevel := flagSet.String("log-level", "warning", "logging level")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitUsage
	}
	log.SetLevel(level)

	if flagSet.NArg() < 1 {
		fmt.Fprintf(stderr, "error: no command specified\n\n")
		usage(flagSet, stderr)
		return exitUsage
	}

	name := flagSet.Arg(0)
	cmd, ok := knownCommands[name]
	if !ok {
		fmt.Fprintf(stderr, "error: unknown command %q\n\n", name)
		usage(flagSet, stderr)
		return exitUsage
	}

	cmdArgs := flagSet.Args()[1:]
	if len(cmdArgs) < cmd.minArgs {
		fmt.Fprintf(stderr, "error: syntax: ezusbconfig %s %s\n", name, cmd.usage)
		return exitUsage
	}

	if *configPath == "" {
		fmt.Fprintf(stderr, "error: no configuration file: use --config or set %s\n", configEnv)
		return exitUsage
	}

	switch *output {
	case "text", "yaml":
	default:
		fmt.Fprintf(stderr, "error: unknown output format %q\n", *output)
		return exitUsage
	}

	env := &environment{
		configPath:  *configPath,
		output:      *output,
		firmwareDir: *firmwareDir,
		log:         log,
		stdout:      stdout,
		stderr:      stderr,
	}
	return cmd.run(env, cmdArgs)
}

func usage(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "syntax: ezusbconfig <command> [options] {arguments}\n")
	fmt.Fprintf(w, "\nPossible commands:\n")

	names := make([]string, 0, len(knownCommands))
	for name := range knownCommands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := knownCommands[name]
		fmt.Fprintf(w, "    ezusbconfig %-24s %s\n", name+" "+cmd.usage, cmd.description)
	}
	fmt.Fprintf(w, "\n")

	flagSet.PrintDefaults()
}
