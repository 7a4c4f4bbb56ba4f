// Package cmd - calc command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"voicedash/core/calc"
	"voicedash/core/types"
	"voicedash/internal/config"
	"voicedash/internal/errors"
)

// calcCmd derives cost and ROI metrics from a pricing configuration file
var calcCmd = &cobra.Command{
	Use:   "calc <pricing.json>",
	Short: "Compute cost and ROI metrics from a pricing configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPricingConfig(args[0])
		if err != nil {
			return err
		}

		metrics := calc.ComputeCosts(*cfg)
		printMetrics(metrics, config.Get().Pricing.DefaultCurrency)
		return nil
	},
}

func loadPricingConfig(path string) (*types.PricingVolumeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "reading pricing config", err)
	}
	var cfg types.PricingVolumeConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Parsing("decoding pricing config", err)
	}
	return &cfg, nil
}

func printMetrics(m types.DerivedMetrics, currency types.Currency) {
	fmt.Printf("Volume                  %d/day  %d/week  %d/month\n",
		m.Volume.PerDay, m.Volume.PerWeek, m.Volume.PerMonth)
	fmt.Printf("Cost per call           %s %s\n", m.CostPerUnit, currency)
	fmt.Printf("Monthly operational     %s %s\n", m.MonthlyOperationalCost, currency)
	fmt.Printf("First year total        %s %s\n", m.FirstYearTotalCost, currency)
	fmt.Printf("Recurring annual        %s %s\n", m.RecurringAnnualCost, currency)
	if m.ROI != nil {
		fmt.Printf("Monthly conversions     %s\n", m.ROI.MonthlyConversions)
		fmt.Printf("Monthly revenue         %s %s\n", m.ROI.MonthlyRevenue, currency)
		fmt.Printf("Monthly profit          %s %s\n", m.ROI.MonthlyProfit, currency)
	}
}
