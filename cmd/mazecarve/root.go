// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazegraph/maze"
)

// newRootCmd wires flags to a run function that writes the maze to out.
func newRootCmd(out io.Writer) *cobra.Command {
	var (
		cfg        = defaultConfig()
		configPath string
		verbose    bool
	)

	rootCmd := &cobra.Command{
		Use:          "mazecarve",
		Short:        "Carve a random grid maze with Kruskal's algorithm and print it.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			log.SetLevel(level)
			if configPath != "" {
				fileCfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = mergeFlags(cmd, fileCfg, cfg)
			}
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(out, cfg)
		},
	}
	rootCmd.Flags().IntVarP(&cfg.Width, "width", "W", cfg.Width, "maze width in rooms")
	rootCmd.Flags().IntVarP(&cfg.Height, "height", "H", cfg.Height, "maze height in rooms")
	rootCmd.Flags().Int64VarP(&cfg.Seed, "seed", "s", 0, "random seed (0 picks one from the clock)")
	rootCmd.Flags().BoolVar(&cfg.Solve, "solve", false, "draw the route from the top-left to the bottom-right room")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return rootCmd
}

// mergeFlags lays explicitly set flags over the file configuration.
func mergeFlags(cmd *cobra.Command, file, flags Config) Config {
	out := file
	if cmd.Flags().Changed("width") {
		out.Width = flags.Width
	}
	if cmd.Flags().Changed("height") {
		out.Height = flags.Height
	}
	if cmd.Flags().Changed("seed") {
		out.Seed = flags.Seed
	}
	if cmd.Flags().Changed("solve") {
		out.Solve = flags.Solve
	}

	return out
}

// run builds, carves, optionally solves, and renders the maze.
func run(out io.Writer, cfg Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithFields(log.Fields{"width": cfg.Width, "height": cfg.Height, "seed": seed}).Debug("carving maze")

	m, err := maze.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return errors.Wrap(err, "build grid")
	}
	carved, err := maze.Carve(m, maze.NewKruskalCarver(maze.WithSeed(seed)))
	if err != nil {
		return errors.Wrap(err, "carve maze")
	}
	log.Debugf("removed %s of %s walls",
		humanize.Comma(int64(len(carved.Passages()))), humanize.Comma(int64(len(m.Walls()))))

	var route []maze.Room
	if cfg.Solve {
		rooms := carved.Rooms()
		route, err = maze.Solve(carved, rooms[0], rooms[len(rooms)-1])
		if err != nil {
			return errors.Wrap(err, "solve maze")
		}
		log.Debugf("route visits %d rooms", len(route))
	}

	return errors.Wrap(maze.Render(out, carved, route), "render maze")
}
