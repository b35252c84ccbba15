package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"accessor-check/internal/analyze"
	"accessor-check/mapping"
)

// errCheckFailed makes the process exit non-zero after the report is printed.
var errCheckFailed = errors.New("accessor check failed")

func (a *app) newCheckCmd() *cobra.Command {
	var (
		mappingPath string
		ignored     []string
	)

	cmd := &cobra.Command{
		Use:   "check [packages...]",
		Short: "Report fields whose accessors break the naming conventions",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []analyze.CheckerOption{
				analyze.WithLogger(a.logger),
				analyze.WithIgnored(ignored...),
			}

			if mappingPath != "" {
				m, err := mapping.LoadFile(mappingPath)
				if err != nil {
					return err
				}

				opts = append(opts, analyze.WithMapping(m))
			}

			graph, err := a.load(args)
			if err != nil {
				return err
			}

			res := analyze.NewChecker(opts...).Check(graph)

			out := cmd.OutOrStdout()
			for _, f := range res.Failures {
				fmt.Fprintln(out, f.String())
			}

			fmt.Fprintf(out, "checked %d fields, skipped %d, %d failures\n",
				len(res.Checked), len(res.Skipped), len(res.Failures))

			a.logger.Info("check finished",
				zap.Int("checked", len(res.Checked)),
				zap.Int("failures", len(res.Failures)))

			if res.HasFailures() {
				return errCheckFailed
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "YAML accessor table")
	cmd.Flags().StringSliceVar(&ignored, "ignore", nil, "field names to skip in every type")

	return cmd
}
