package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newNewCmd(v *viper.Viper, run runFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "new NAME",
		Short: "Edit a new file",
		Long:  `Open an empty buffer that will be saved as NAME. NAME must not exist yet.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return start(cmd.Context(), v, run, args[0], true)
		},
	}
}
