package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mchmarny/agentctl/pkg/agent"
	"github.com/mchmarny/agentctl/pkg/data"
	"github.com/mchmarny/agentctl/pkg/enrich"
	"github.com/mchmarny/agentctl/pkg/infer"
)

var (
	dirFlag = &cli.StringFlag{
		Name:  "dir",
		Usage: "Path to the agent catalog directory (optional, defaults to config value)",
	}

	dryRunFlag = &cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Report what would change without writing descriptors or history",
	}

	enrichCmd = &cli.Command{
		Name:    "enrich",
		Aliases: []string{"e"},
		Usage:   "Classify unresolved language, category, and framework values across the catalog",
		UsageText: `agentctl enrich --dir ./agents             # classify and write back
   agentctl enrich --dir ./agents --dry-run   # preview changes only`,
		HideHelpCommand: true,
		Action:          cmdEnrich,
		Flags: []cli.Flag{
			dirFlag,
			dryRunFlag,
			formatFlag,
		},
	}
)

func cmdEnrich(c *cli.Context) error {
	cfg := getConfig(c)

	dir := c.String(dirFlag.Name)
	if dir == "" {
		dir = cfg.Conf.CatalogDir
	}

	store, err := agent.NewStore(dir)
	if err != nil {
		return fmt.Errorf("opening catalog: %w", err)
	}

	e, err := enrich.New(store, infer.New(cfg.Tables), c.Bool(dryRunFlag.Name))
	if err != nil {
		return fmt.Errorf("creating enricher: %w", err)
	}

	res, err := e.Run()
	if err != nil {
		return fmt.Errorf("running enrichment: %w", err)
	}

	if !res.DryRun {
		if err := data.SaveRun(cfg.DB, res); err != nil {
			return fmt.Errorf("saving run history: %w", err)
		}
	}

	if err := encode(res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
