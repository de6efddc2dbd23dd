package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dsviz/config"
)

type rootFlags struct {
	configPath string
	instant    bool
	verbose    bool
	noColor    bool
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "dsviz",
		Short: "Step through AVL trees, linked lists, hash tables and graphs",
		Long: `dsviz replays a script of editing commands against one data structure
and prints what an animated front end would show.

Shared commands:
  search V | undo | redo | clear | random [N [MIN MAX]] | load PATH
  tick DUR | run | show | hints | check | stats
Keyed structures (avl, list, hash):
  insert V | delete V
AVL only:
  code
Graph:
  edge A B W | vertex ID | remove A [B] | kruskal | mst`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (default: dsviz.yaml in . or $HOME/.config/dsviz)")
	pf.BoolVar(&flags.instant, "instant", false, "disable animation pacing")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging to stderr")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	for _, name := range structures {
		root.AddCommand(newStructureCommand(name, flags))
	}
	root.AddCommand(versionCmd())

	return root
}

type structureCommand struct {
	name   string
	root   *rootFlags
	script string
	exec   []string
}

func newStructureCommand(name string, root *rootFlags) *cobra.Command {
	c := &structureCommand{name: name, root: root}

	cmd := &cobra.Command{
		Use:   name,
		Short: fmt.Sprintf("Run a script against the %s engine", name),
		Args:  cobra.NoArgs,
		RunE:  c.Run,
	}
	cmd.Flags().StringVarP(&c.script, "script", "s", "-", "script file, - for stdin")
	cmd.Flags().StringArrayVarP(&c.exec, "exec", "e", nil, "command to run before the script (repeatable)")

	return cmd
}

// Run loads the configuration, builds the engine and replays the commands.
func (c *structureCommand) Run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.root.configPath)
	if err != nil {
		return err
	}
	if c.root.instant {
		cfg.Playback.Instant = true
	}
	if c.root.verbose {
		cfg.Logging.Level = "debug"
	}

	s, err := newSession(c.name, cfg, cmd.OutOrStdout(), cfg.NewLogger(cmd.ErrOrStderr()), c.root.noColor)
	if err != nil {
		return err
	}
	for _, line := range c.exec {
		if err := s.Exec(line); err != nil {
			return err
		}
	}
	if len(c.exec) > 0 && !cmd.Flags().Changed("script") {
		return nil
	}

	in, closeIn, err := c.open(cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer closeIn()

	return s.Run(in)
}

func (c *structureCommand) open(stdin io.Reader) (io.Reader, func(), error) {
	if c.script == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(c.script)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open script")
	}
	return f, func() { _ = f.Close() }, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dsviz %s (commit: %s, structures: %s)\n", version, commit, strings.Join(structures, ", "))
		},
	}
}
