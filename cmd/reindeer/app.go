package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/reindeer/config"
	"github.com/katalvlaran/reindeer/maze"
	"github.com/katalvlaran/reindeer/pathengine"
	"github.com/katalvlaran/reindeer/server"
	"github.com/katalvlaran/reindeer/stategraph"
)

// newApp builds the command tree with flag defaults taken from cfg.
func newApp(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:    AppName,
		Usage:   "solve turn-weighted mazes",
		Version: Version,
		Commands: []*cli.Command{
			solveCommand(cfg),
			serveCommand(cfg),
		},
	}
}

func solveCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:      "solve",
		Usage:     "print the minimum cost and the optimal tile count of a maze",
		ArgsUsage: "[FILE|-]",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "turn-cost", Value: cfg.TurnCost, Usage: "cost of a 90° turn"},
			&cli.Int64Flag{Name: "move-cost", Value: cfg.MoveCost, Usage: "cost of a forward step"},
			&cli.StringFlag{Name: "facing", Value: cfg.StartFacing.String(), Usage: "initial facing (up, right, down, left)"},
			&cli.BoolFlag{Name: "concurrent", Value: cfg.Concurrent, Usage: "run forward and backward searches in parallel"},
			&cli.BoolFlag{Name: "render", Usage: "print the maze with optimal tiles marked 'O'"},
			&cli.BoolFlag{Name: "path", Usage: "print one optimal route step by step"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			run := cfg
			run.TurnCost = cmd.Int64("turn-cost")
			run.MoveCost = cmd.Int64("move-cost")
			run.Concurrent = cmd.Bool("concurrent")
			f, err := stategraph.ParseFacing(cmd.String("facing"))
			if err != nil {
				return err
			}
			run.StartFacing = f
			if err := run.Validate(); err != nil {
				return err
			}

			grid, err := readGrid(cmd.Args().First(), cmd.Root().Reader)
			if err != nil {
				return err
			}

			return solve(ctx, cmd.Root().Writer, grid, run, cmd.Bool("render"), cmd.Bool("path"))
		},
	}
}

func serveCommand(cfg config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: cfg.HTTPAddr, Usage: "listen address"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			run := cfg
			run.HTTPAddr = cmd.String("addr")
			if err := run.Validate(); err != nil {
				return err
			}
			log.Printf("[APP] [INFO] starting %s v%s on %s", AppName, Version, run.HTTPAddr)

			return server.New(run).Run()
		},
	}
}

// readGrid parses the maze at path, or from stdin when path is "" or "-".
func readGrid(path string, stdin io.Reader) (*maze.Grid, error) {
	if path == "" || path == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		return maze.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	grid, err := maze.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return grid, nil
}

// solve runs the engine and writes the report to w.
func solve(ctx context.Context, w io.Writer, grid *maze.Grid, cfg config.Config, render, path bool) error {
	g, err := stategraph.New(grid, cfg.GraphOptions()...)
	if err != nil {
		return err
	}
	opts := []pathengine.Option{
		pathengine.WithContext(ctx),
		pathengine.WithStartFacing(cfg.StartFacing),
	}
	if cfg.Concurrent {
		opts = append(opts, pathengine.WithConcurrentSearch())
	}
	res, err := pathengine.Solve(g, opts...)
	if err != nil {
		return err
	}

	if res.Reachable {
		fmt.Fprintf(w, "cost: %d\n", res.MinCost)
	} else {
		fmt.Fprintln(w, "cost: unreachable")
	}
	fmt.Fprintf(w, "tiles: %d\n", res.TileCount())
	if render {
		fmt.Fprint(w, res.Render())
	}
	if path && res.Reachable {
		route, err := res.OptimalPath()
		if err != nil {
			return err
		}
		for _, s := range route {
			fmt.Fprintln(w, s)
		}
	}

	return nil
}
