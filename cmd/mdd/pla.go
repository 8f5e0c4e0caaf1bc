// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	teddy "github.com/go-mdd/teddy"
	"github.com/go-mdd/teddy/pla"
)

func init() {
	rootCmd.AddCommand(plaStatsCmd)
	rootCmd.AddCommand(plaDotCmd)

	plaDotCmd.Flags().StringVarP(&plaDotOutput, "output", "o", "-", "dot output file, - for stdout")
}

var plaDotOutput string

var plaStatsCmd = &cobra.Command{
	Use:   "stats <file.pla>",
	Short: "load a PLA file and print node pool statistics for the compiled diagram",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := loadPLA(args[0])
		if err != nil {
			return err
		}
		fmt.Print(m.Stats())
		return nil
	},
}

var plaDotCmd = &cobra.Command{
	Use:   "dot <file.pla>",
	Short: "load a PLA file and export the compiled diagram as Graphviz dot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, d, err := loadPLA(args[0])
		if err != nil {
			return err
		}
		return m.PrintDot(plaDotOutput, d)
	},
}

func loadPLA(filename string) (*teddy.Manager, teddy.Diagram, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	parsed, err := pla.Load(f)
	if err != nil {
		return nil, nil, err
	}
	return pla.Build(parsed)
}
