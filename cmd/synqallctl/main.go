// Command synqallctl runs the load workflow and call quality gate offline,
// without a database or broker.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "synqallctl",
		Short:         "Inspect load workflow and call quality decisions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return initConfig(v, cfgFile)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "quality gate config file (yaml)")

	root.AddCommand(workflowCmd())
	root.AddCommand(qualityCmd(v))
	return root
}

func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("SYNQALL")
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd(viper.New()).ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
