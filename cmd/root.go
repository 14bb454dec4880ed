/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jjudge-oj/accountseed/config"
	"github.com/jjudge-oj/accountseed/internal/logger"
	"github.com/jjudge-oj/accountseed/internal/services"
	"github.com/jjudge-oj/accountseed/internal/store"
	"github.com/jjudge-oj/accountseed/types"
	"github.com/spf13/cobra"
)

// ErrArgument is returned for missing or invalid command line arguments.
var ErrArgument = errors.New("argument error")

type rootOptions struct {
	csvPath      string
	roleEncoding string
	logLevel     string
	dryRun       bool
}

// NewRootCmd builds the accountseed command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "accountseed",
		Short: "Fills in passwords and default roles of an account CSV file",
		Long: `Reads an account CSV file (email,username,password,displayedName,role),
gives every account a freshly generated password and the Student role,
and rewrites the file in place. Usage:

	accountseed --csv-path accounts.csv
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected argument %q", ErrArgument, args[0])
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvision(cmd, opts)
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrArgument, err)
	})

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.csvPath, "csv-path", "c", "", "path of the account CSV file to provision in place (required)")
	flags.StringVarP(&opts.roleEncoding, "role-encoding", "r", "", `role cell encoding, "name" or "code" (defaults to ROLE_ENCODING, then "name")`)
	flags.StringVar(&opts.logLevel, "log-level", "", `log level: debug, info, warn or error (defaults to LOG_LEVEL, then "info")`)
	flags.BoolVar(&opts.dryRun, "dry-run", false, "fill in defaults without rewriting the file")

	return rootCmd
}

// Execute runs the root command and exits with a non-zero status on failure.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, ErrArgument) {
			fmt.Fprint(os.Stderr, rootCmd.UsageString())
		}
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps a command error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrArgument):
		return 2
	default:
		return 1
	}
}

func runProvision(cmd *cobra.Command, opts *rootOptions) error {
	if strings.TrimSpace(opts.csvPath) == "" {
		return fmt.Errorf("%w: required flag \"csv-path\" not set", ErrArgument)
	}

	cfg := config.LoadConfig()

	encodingName := cfg.RoleEncoding
	if cmd.Flags().Changed("role-encoding") {
		encodingName = opts.roleEncoding
	}
	encoding, err := types.ParseRoleEncoding(encodingName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArgument, err)
	}

	level := cfg.Logging.Level
	if cmd.Flags().Changed("log-level") {
		level = opts.logLevel
	}
	log, err := logger.New(cmd.ErrOrStderr(), level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrArgument, err)
	}
	defer func() {
		_ = log.Sync()
	}()

	svc := services.NewProvisionService(
		store.NewAccountRepository(encoding),
		services.NewPasswordGenerator(services.DefaultPasswordLength),
		log,
	)
	summary, err := svc.Run(cmd.Context(), opts.csvPath, opts.dryRun)
	if err != nil {
		return err
	}

	if summary.DryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "dry run: %d accounts would be provisioned in %s\n", summary.Records, summary.Path)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "provisioned %d accounts in %s\n", summary.Records, summary.Path)
	return nil
}
