package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	ai "github.com/spetersoncode/scribe"
	"github.com/spetersoncode/scribe/blog"
	"github.com/spf13/cobra"
)

// describeFailure prefixes generation errors with the failing step and the
// provider's classification.
func describeFailure(err error) error {
	f, ok := blog.Diagnose(err)
	if !ok {
		return err
	}
	if ai.IsTransient(err) {
		return fmt.Errorf("%s, try again later: %w", f, err)
	}
	return fmt.Errorf("%s: %w", f, err)
}

func newWriteCmd(a *app) *cobra.Command {
	var (
		variant   string
		showTitle bool
	)

	cmd := &cobra.Command{
		Use:   "write [topic]",
		Short: "Generate a blog post for a topic",
		Long: `Generates a title for the topic, then a blog post based on that title,
and prints the post to stdout. Words after the command are joined into the topic.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.build(a.cfg, a.logger)
			if err != nil {
				return err
			}

			agent, ok := reg.Get(variant)
			if !ok {
				return fmt.Errorf("unknown variant %q (available: %s)", variant, strings.Join(reg.Names(), ", "))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			post, err := agent.Compose(ctx, strings.Join(args, " "))
			if err != nil {
				return describeFailure(err)
			}

			out := cmd.OutOrStdout()
			if showTitle {
				fmt.Fprintf(out, "%s\n\n", post.Title)
			}
			fmt.Fprintln(out, post.Body)
			return nil
		},
	}

	cmd.Flags().StringVarP(&variant, "variant", "v", blog.DefaultVariant, "Pipeline variant to run")
	cmd.Flags().BoolVar(&showTitle, "show-title", false, "Print the generated title before the post")
	return cmd
}
