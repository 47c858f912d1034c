package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/mchmarny/agentctl/pkg/agent"
	"github.com/mchmarny/agentctl/pkg/infer"
)

var (
	fileFlag = &cli.StringFlag{
		Name:     "file",
		Usage:    "Path to a single agent descriptor",
		Required: true,
	}

	checkCmd = &cli.Command{
		Name:            "check",
		Aliases:         []string{"c"},
		Usage:           "Show current vs inferred axis values for one descriptor without writing",
		UsageText:       `agentctl check --file ./agents/my-agent.json`,
		HideHelpCommand: true,
		Action:          cmdCheck,
		Flags: []cli.Flag{
			fileFlag,
			formatFlag,
		},
	}
)

type axisCheck struct {
	Current  string `json:"current" yaml:"current"`
	Inferred string `json:"inferred,omitempty" yaml:"inferred,omitempty"`
	Resolved bool   `json:"resolved" yaml:"resolved"`
}

type checkResult struct {
	Slug string                `json:"slug" yaml:"slug"`
	Axes map[string]*axisCheck `json:"axes" yaml:"axes"`
}

func cmdCheck(c *cli.Context) error {
	cfg := getConfig(c)

	a, err := agent.Load(c.String(fileFlag.Name))
	if err != nil {
		return fmt.Errorf("loading descriptor: %w", err)
	}

	classifier := infer.New(cfg.Tables)
	res := &checkResult{
		Slug: a.Slug(),
		Axes: make(map[string]*axisCheck, len(infer.Axes)),
	}

	for _, axis := range infer.Axes {
		ac := &axisCheck{Current: a.Str(string(axis))}
		if label, ok := classifier.Infer(axis, a); ok {
			ac.Inferred = label
			ac.Resolved = true
		}
		res.Axes[string(axis)] = ac
	}

	if err := encode(res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
