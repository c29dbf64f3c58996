// Copyright 2026 The dustgrid Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dustgrid/dustgrid"
	"github.com/dustgrid/dustgrid/config"
	"github.com/dustgrid/dustgrid/logger"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "dustgrid [input-file]",
	Short: "Run the dust-sweeping rover simulation",
	Long: `dustgrid reads a grid description, a rover start position, a set of
dust coordinates and a move sequence, simulates the rover's walk across
the grid, and prints the rover's final position followed by the number
of dust cells swept.

With no input file, dustgrid reads from standard input.`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "f", "/etc/dustgrid.yaml", "configuration file location")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load(configPath)
	if err := logger.InitConsoleLog(cfg.LogLevel); err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	input, err := dustgrid.NewReader(in).Read()
	if err != nil {
		return err
	}
	game, err := dustgrid.NewGame(input.Extent, input.Start, input.Dust, cfg.FillFactor)
	if err != nil {
		return err
	}

	swept := game.Run(input.Moves)
	fmt.Println(game.Rover())
	fmt.Println(swept)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
