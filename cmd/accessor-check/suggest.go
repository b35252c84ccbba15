package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"accessor-check/internal/analyze"
	"accessor-check/mapping"
)

func (a *app) newSuggestCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "suggest [packages...]",
		Short: "Write an accessor table for fields the naming rules cannot resolve",
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.load(args)
			if err != nil {
				return err
			}

			f := analyze.Suggest(graph, a.logger)

			if output != "" {
				if err := mapping.WriteFile(f, output); err != nil {
					return err
				}

				a.logger.Info("wrote accessor table",
					zap.String("path", output),
					zap.Int("types", len(f.Types)))

				return nil
			}

			data, err := mapping.Marshal(f)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))

			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the table to this file instead of stdout")

	return cmd
}
