package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mchmarny/agentctl/pkg/data"
)

const historyLimitDefault = 10

var (
	limitFlag = &cli.IntFlag{
		Name:  "limit",
		Usage: "Max number of runs to list",
		Value: historyLimitDefault,
	}

	axisFlag = &cli.StringFlag{
		Name:  "axis",
		Usage: "Show aggregate label totals for one axis [language, category, framework]",
	}

	historyCmd = &cli.Command{
		Name:    "history",
		Aliases: []string{"h"},
		Usage:   "List past enrichment runs or aggregate label assignments",
		UsageText: `agentctl history                      # recent runs
   agentctl history --axis language      # label totals for one axis`,
		HideHelpCommand: true,
		Action:          cmdHistory,
		Flags: []cli.Flag{
			limitFlag,
			axisFlag,
			formatFlag,
		},
	}
)

func cmdHistory(c *cli.Context) error {
	cfg := getConfig(c)

	if axis := c.String(axisFlag.Name); axis != "" {
		totals, err := data.GetLabelTotals(cfg.DB, axis)
		if err != nil {
			return fmt.Errorf("querying label totals: %w", err)
		}
		if err := encode(totals); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	}

	runs, err := data.GetRuns(cfg.DB, c.Int(limitFlag.Name))
	if err != nil {
		return fmt.Errorf("querying runs: %w", err)
	}
	if err := encode(runs); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
