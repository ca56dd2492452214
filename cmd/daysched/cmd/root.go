package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/daysched/daysched/internal/common"
	"github.com/daysched/daysched/internal/common/validation"
	"github.com/daysched/daysched/internal/scheduler"
)

const (
	CustomConfigLocation string = "config"
)

func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "daysched",
		SilenceUsage: true,
		Short:        "Daily batch job admission scheduler",
	}

	cmd.PersistentFlags().String(
		CustomConfigLocation,
		"",
		"Fully qualified path to application configuration file")

	cmd.AddCommand(
		runCmd(),
		runOnceCmd(),
	)

	return cmd
}

func loadConfig(cmd *cobra.Command) (scheduler.Configuration, error) {
	var config scheduler.Configuration

	userSpecifiedConfig, err := cmd.Flags().GetString(CustomConfigLocation)
	if err != nil {
		return config, errors.WithStack(err)
	}
	common.LoadConfig(&config, "./config/daysched", userSpecifiedConfig)

	if err := config.Validate(); err != nil {
		validation.LogValidationErrors(err)
		return config, errors.New("invalid configuration")
	}
	return config, nil
}
