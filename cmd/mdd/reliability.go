// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	teddy "github.com/go-mdd/teddy"
	"github.com/go-mdd/teddy/reliability"
)

func init() {
	rootCmd.AddCommand(reliabilityCmd)
	reliabilityCmd.Flags().Int32Var(&reliabilityThreshold, "threshold", 1, "boundary state for availability")
}

var reliabilityThreshold int32

var reliabilityCmd = &cobra.Command{
	Use:   "reliability <file.pla>",
	Short: "report state frequency and availability for a PLA-compiled diagram, assuming uniform component state probabilities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, d, err := loadPLA(args[0])
		if err != nil {
			return err
		}
		p := uniformProbabilities(m)
		fmt.Printf("StateFrequency(%d):  %.6f\n", reliabilityThreshold, reliability.StateFrequency(m, d, reliabilityThreshold))
		fmt.Printf("Availability(%d):    %.6f\n", reliabilityThreshold, reliability.Availability(m, d, reliabilityThreshold, p))
		fmt.Printf("Unavailability(%d):  %.6f\n", reliabilityThreshold, reliability.Unavailability(m, d, reliabilityThreshold, p))
		return nil
	},
}

func uniformProbabilities(m *teddy.Manager) reliability.Probabilities {
	p := make(reliability.Probabilities, m.Varcount())
	for i := range p {
		domain := m.Domain(i)
		row := make([]float64, domain)
		for k := range row {
			row[k] = 1 / float64(domain)
		}
		p[i] = row
	}
	return p
}
