package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/Sujal861/knee-xray-insight-system/pkg/cli/config"
	"github.com/Sujal861/knee-xray-insight-system/pkg/domain/types"
)

func cmdValidate() *cli.Command {
	var gradingCfg config.Grading

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the grading configuration file",
		Flags:   gradingCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			ok := color.New(color.FgGreen, color.Bold)
			ng := color.New(color.FgRed, color.Bold)

			grading, err := gradingCfg.Configure()
			if err != nil {
				ng.Println("NG: grading configuration is invalid")
				return goerr.Wrap(err, "grading configuration validation failed")
			}

			ok.Println("OK: grading configuration is valid")
			fmt.Printf("  auth latency:    %s\n", grading.AuthDelay())
			fmt.Printf("  predict latency: %s\n", grading.PredictDelay())
			fmt.Printf("  upload limit:    %d bytes\n", grading.MaxUploadBytes())
			fmt.Printf("  allowed types:   %v\n", grading.Upload.AllowedTypes)

			texts := grading.InterpretationTexts()
			for i, text := range texts {
				fmt.Printf("  %s: %s\n", types.Grade(i), text)
			}

			return nil
		},
	}
}
