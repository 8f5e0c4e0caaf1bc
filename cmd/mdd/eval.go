// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(evalCmd)
}

var evalCmd = &cobra.Command{
	Use:   "eval <file.pla> <values>",
	Short: "evaluate the diagram compiled from a PLA file at a comma-separated assignment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, d, err := loadPLA(args[0])
		if err != nil {
			return err
		}
		parts := strings.Split(args[1], ",")
		values := make([]int32, len(parts))
		for i, p := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return errors.Wrapf(err, "parsing value %d", i)
			}
			values[i] = int32(v)
		}
		if len(values) != m.Varcount() {
			return fmt.Errorf("expected %d values, got %d", m.Varcount(), len(values))
		}
		fmt.Println(m.Evaluate(d, values))
		return nil
	},
}
