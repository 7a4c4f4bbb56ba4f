// Package cmd - volume command
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"voicedash/core/calc"
	"voicedash/core/types"
	"voicedash/internal/errors"
)

var (
	volFrequency float64
	volStart     string
	volEnd       string
	volDays      string
	volPerMonth  int64
	volPerWeek   int64
	volPerDay    int64
)

// volumeCmd converts call volumes between granularities or derives them from
// a scheduled calling window
var volumeCmd = &cobra.Command{
	Use:   "volume",
	Short: "Derive a call-volume triple from a schedule or a single figure",
	RunE: func(cmd *cobra.Command, args []string) error {
		triple, err := resolveVolume()
		if err != nil {
			return err
		}
		fmt.Printf("%d/day  %d/week  %d/month\n", triple.PerDay, triple.PerWeek, triple.PerMonth)
		return nil
	},
}

func init() {
	volumeCmd.Flags().Float64Var(&volFrequency, "frequency", 0, "minutes between call attempts")
	volumeCmd.Flags().StringVar(&volStart, "start", "", "window start (HH:MM)")
	volumeCmd.Flags().StringVar(&volEnd, "end", "", "window end (HH:MM)")
	volumeCmd.Flags().StringVar(&volDays, "days", "", "active weekdays, 1=Monday (e.g. 1,2,3,4,5)")
	volumeCmd.Flags().Int64Var(&volPerMonth, "per-month", 0, "monthly call volume")
	volumeCmd.Flags().Int64Var(&volPerWeek, "per-week", 0, "weekly call volume")
	volumeCmd.Flags().Int64Var(&volPerDay, "per-day", 0, "daily call volume")
}

func resolveVolume() (types.VolumeTriple, error) {
	switch {
	case volStart != "" || volEnd != "" || volDays != "":
		days, err := parseDays(volDays)
		if err != nil {
			return types.VolumeTriple{}, err
		}
		return calc.FromSchedule(types.ScheduledWindow{
			FrequencyMinutes: decimal.NewFromFloat(volFrequency),
			StartTime:        volStart,
			EndTime:          volEnd,
			ActiveDays:       days,
		}), nil
	case volPerMonth > 0:
		return calc.FromMonth(volPerMonth), nil
	case volPerWeek > 0:
		return calc.FromWeek(volPerWeek), nil
	case volPerDay > 0:
		return calc.FromDay(volPerDay), nil
	default:
		return types.VolumeTriple{}, errors.Input("provide a schedule or one of --per-month/--per-week/--per-day")
	}
}

func parseDays(s string) ([7]bool, error) {
	var days [7]bool
	if s == "" {
		return days, nil
	}
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > 7 {
			return days, errors.Newf(errors.TypeInput, "invalid weekday %q (expected 1-7)", part)
		}
		days[n-1] = true
	}
	return days, nil
}
