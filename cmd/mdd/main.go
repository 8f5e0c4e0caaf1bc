// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command mdd is a small command-line front end over the decision diagram
// library: it loads a PLA description, compiles it into a diagram, and can
// report node statistics, evaluate the function at a point, or export the
// diagram as a Graphviz graph.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mdd",
	Short: "mdd builds and inspects multi-valued decision diagrams",
}
