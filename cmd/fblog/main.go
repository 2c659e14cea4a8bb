// Command fblog posts a message to the log, like the platform's log(1)
// shell tool. The message comes from the command line, or from stdin one
// line at a time when no message is given.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jessevdk/go-flags"

	"github.com/helsayed/fblog"
)

type options struct {
	Tag      string `short:"t" long:"tag" default:"fblog" description:"log tag"`
	Priority string `short:"p" long:"priority" default:"i" description:"priority: V, D, I, W, E, F or a full name"`
	Config   string `short:"c" long:"config" description:"TOML config file to apply before logging"`

	Args struct {
		Message []string `positional-arg-name:"message"`
	} `positional-args:"yes"`
}

func run() error {
	var opts options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		return err
	}

	if opts.Config != "" {
		config, err := fblog.LoadConfig(opts.Config)
		if err != nil {
			return err
		}
		if err := config.Apply(); err != nil {
			return err
		}
	}

	priority, err := fblog.ParsePriority(opts.Priority)
	if err != nil {
		return err
	}

	if len(opts.Args.Message) > 0 {
		fblog.Print(priority, opts.Tag, strings.Join(opts.Args.Message, " "))
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		fblog.Print(priority, opts.Tag, scanner.Text())
	}
	return scanner.Err()
}

func main() {
	if err := run(); err != nil {
		if flags.WroteHelp(err) {
			fmt.Fprint(os.Stderr, err)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "fblog: %v\n", err)
		os.Exit(1)
	}
}
