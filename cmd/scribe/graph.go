package main

import (
	"fmt"
	"strings"

	"github.com/spetersoncode/scribe/blog"
	"github.com/spf13/cobra"
)

func newGraphCmd(a *app) *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Export the pipeline graph visualization",
		Long:  `Compiles the selected variant and outputs a Mermaid diagram (graph TD) of its steps.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := buildGraphRegistry(a.cfg, a.logger)
			if err != nil {
				return err
			}

			agent, ok := reg.Get(variant)
			if !ok {
				return fmt.Errorf("unknown variant %q (available: %s)", variant, strings.Join(reg.Names(), ", "))
			}

			fmt.Fprint(cmd.OutOrStdout(), agent.Graph().Mermaid())
			return nil
		},
	}

	cmd.Flags().StringVarP(&variant, "variant", "v", blog.DefaultVariant, "Pipeline variant to render")
	return cmd
}
