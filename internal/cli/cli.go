package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/daniel-harrison-cko/railway-workshop/internal/greeter"
	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop/ropzap"
)

// ErrInvalidInput is returned when at least one name fails validation.
var ErrInvalidInput = errors.New("invalid input")

const envPrefix = "GREETER"

// NewCommand builds the greeter root command. Settings are read from flags
// first and GREETER_* environment variables second.
func NewCommand(logger *zap.Logger) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "greeter NAME...",
		Short:         "Greet people by name",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setting := v.GetString("setting")
			logger.Debug("greeting", zap.String("setting", setting), zap.Int("names", len(args)))

			o := ropzap.Observe(logger, "welcome", greeter.New(setting).Welcome(args...))

			fmt.Fprintln(cmd.OutOrStdout(), greeter.Report(o))
			if o.IsErr() {
				return ErrInvalidInput
			}
			return nil
		},
	}

	cmd.Flags().String("setting", "informal", `greeting style, "formal" or "informal"`)
	if err := v.BindPFlag("setting", cmd.Flags().Lookup("setting")); err != nil {
		panic(err)
	}

	return cmd
}
