// ABOUTME: Flag parsing for the linekit demo binary.

package main

import "flag"

// cliArgs holds the parsed command-line flags.
type cliArgs struct {
	configPath   string
	bindingsPath string
	verbose      bool
	version      bool
}

// parseFlags parses os.Args into cliArgs.
func parseFlags() cliArgs {
	var args cliArgs
	flag.StringVar(&args.configPath, "config", "", "config file path (default ~/.linekit/config.yaml)")
	flag.StringVar(&args.bindingsPath, "keybindings", "", "keybindings file path (default ~/.linekit/keybindings.json)")
	flag.BoolVar(&args.verbose, "verbose", false, "enable debug logging")
	flag.BoolVar(&args.version, "version", false, "print version and exit")
	flag.Parse()
	return args
}
