package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"heft/internal/config"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	var (
		formatName string
		top        int
		quiet      bool
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:   "heft [working-dir]",
		Short: "Heft lists the attachments of an extracted GitHub archive, largest first",
		Long: `Heft reads the attachments_*.json metadata of an extracted GitHub
archive, measures every referenced file under attachments/, and prints
the attachments ordered by size, largest first.

Run it inside the directory created when you extract the archive, or
pass that directory as the only argument.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			warning, err := configureLoggerForCLI(logLevel, cfg.LogLevel)
			if err != nil {
				return err
			}
			if warning != "" {
				fmt.Fprintln(os.Stderr, warning)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			workdir := "."
			if len(args) == 1 {
				workdir = args[0]
			}
			opts := auditOptions{
				formatName: formatName,
				top:        top,
				progress:   cfg.Progress && !quiet,
			}
			return runAudit(cmd.OutOrStdout(), cmd.ErrOrStderr(), workdir, opts)
		},
	}

	cmd.Version = version
	cmd.Flags().StringVarP(&formatName, "format", "f", cfg.Format, "output format: text, json, yaml or table")
	cmd.Flags().IntVarP(&top, "top", "n", cfg.Top, "only show the N largest attachments (0 shows all)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress output")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(newConfigCmd(cfg))

	return cmd
}
