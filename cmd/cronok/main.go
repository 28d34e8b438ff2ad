// Command cronok computes and explains cron fire times from the command
// line. It is a thin wrapper over the cron package: all semantics live
// there.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/candango/cronok/cron"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cronok",
		Short:        "Compute and explain cron fire times",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringP("zone", "z", "UTC", "IANA timezone the schedule fires in")
	root.PersistentFlags().StringP("from", "f", "", "reference instant, RFC3339 (default: now)")
	root.AddCommand(newNextCmd(), newPrevCmd(), newDescribeCmd(), newCheckCmd())
	return root
}

// scheduleFromArgs resolves the shared expression, zone and reference
// flags for the commands that search.
func scheduleFromArgs(cmd *cobra.Command, args []string) (*cron.Expression, time.Time, error) {
	zone, _ := cmd.Flags().GetString("zone")
	expr, err := cron.Parse(args[0], zone)
	if err != nil {
		return nil, time.Time{}, err
	}
	from := time.Now()
	if raw, _ := cmd.Flags().GetString("from"); raw != "" {
		from, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("parsing --from: %w", err)
		}
	}
	return expr, from, nil
}

func newNextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next <expression>",
		Short: "Print upcoming fire times",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, from, err := scheduleFromArgs(cmd, args)
			if err != nil {
				return err
			}
			count, _ := cmd.Flags().GetInt("count")
			epoch, _ := cmd.Flags().GetBool("epoch")
			times := expr.NextN(from, count)
			if len(times) == 0 {
				return cron.ErrNoFireTime
			}
			for _, ft := range times {
				printFireTime(cmd, ft, epoch)
			}
			return nil
		},
	}
	cmd.Flags().IntP("count", "n", 1, "number of fire times to print")
	cmd.Flags().Bool("epoch", false, "print epoch seconds instead of RFC3339")
	return cmd
}

func newPrevCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prev <expression>",
		Short: "Print the previous fire time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expr, from, err := scheduleFromArgs(cmd, args)
			if err != nil {
				return err
			}
			epoch, _ := cmd.Flags().GetBool("epoch")
			ft, err := expr.Previous(from)
			if err != nil {
				return err
			}
			printFireTime(cmd, ft, epoch)
			return nil
		},
	}
	cmd.Flags().Bool("epoch", false, "print epoch seconds instead of RFC3339")
	return cmd
}

func newDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <expression>",
		Short: "Render the schedule as an English sentence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, _ := cmd.Flags().GetString("zone")
			expr, err := cron.Parse(args[0], zone)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), expr.Describe())
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <expression>",
		Short: "Validate an expression, exit nonzero when invalid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			zone, _ := cmd.Flags().GetString("zone")
			if _, err := cron.Parse(args[0], zone); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

func printFireTime(cmd *cobra.Command, t time.Time, epoch bool) {
	if epoch {
		fmt.Fprintln(cmd.OutOrStdout(), t.Unix())
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339))
}
