package main

import (
	"encoding/json"
	"fmt"

	"github.com/Native-Planet/nocktensors"
	"github.com/Native-Planet/nocktensors/internal/engine"
	"github.com/urfave/cli/v2"
)

// evalCmd is a single-command front end over the public API, grounded
// on go/ct/driver/main.go's cli.App + single Commands entry shape: it
// parses a noun literal from argv, evaluates it in a nock.Context, and prints the
// result with the diagnostic printer. No wire protocol or file format
// is defined here; this is a thin wrapper, not part of the core.
var evalCmd = cli.Command{
	Action:    doEval,
	Name:      "eval",
	Usage:     "Evaluate *[subject formula]",
	ArgsUsage: "<subject> <formula>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "stats",
			Usage: "print a task-kind / GC trace alongside the result",
		},
	},
}

func doEval(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("expected exactly 2 arguments: <subject> <formula>")
	}
	subject, err := parseNoun(c.Args().Get(0))
	if err != nil {
		return fmt.Errorf("subject: %w", err)
	}
	formula, err := parseNoun(c.Args().Get(1))
	if err != nil {
		return fmt.Errorf("formula: %w", err)
	}

	ctx := nock.NewDefaultContext()

	if c.Bool("stats") {
		result, report, err := ctx.EvalTraced(subject, formula)
		if err != nil {
			return err
		}
		printed, err := ctx.Print(result)
		if err != nil {
			return err
		}
		fmt.Println(printed)
		fmt.Print(report)
		return nil
	}

	result, err := ctx.Eval(subject, formula)
	if err != nil {
		return err
	}
	printed, err := ctx.Print(result)
	if err != nil {
		return err
	}
	fmt.Println(printed)
	return nil
}

// parseNoun accepts a JSON number/array literal: a JSON array/number
// tree is exactly the external noun format spec.md §3 describes, so
// encoding/json is reused rather than inventing a bespoke parser.
func parseNoun(s string) (engine.External, error) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, err
	}
	return v, nil
}
