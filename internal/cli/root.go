package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"alfredoptarigan/resume-ats/internal/config"
	"alfredoptarigan/resume-ats/internal/logger"
)

const app = "resume-ats"

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "resume-ats serves resume scoring, ATS checks and AI drafted career content",
		Long: `resume-ats serves resume scoring, ATS checks and AI drafted career content.

Run without a subcommand it starts the HTTP API, the same as "resume-ats serve".`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optional config file; environment variables and .env are read either way")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().StringP("port", "p", "", "port to listen on (default is $PORT or 5000)")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("port", rootCmd.PersistentFlags().Lookup("port"))
}

func initConfig() {
	// .env is optional; real deployments set the environment directly.
	_ = config.LoadEnvFile()

	if cfgFile == "" {
		return
	}

	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		cobra.CheckErr(fmt.Errorf("reading config %s: %w", cfgFile, err))
	}
}

// setup builds the logger and the configuration shared by every command.
func setup() (*zap.Logger, *config.Config, error) {
	log, err := logger.New(logger.Options{
		JSON:    viper.GetBool("json"),
		Debug:   viper.GetBool("debug"),
		Service: app,
		Version: config.Version,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("creating a logger: %w", err)
	}

	return log, config.Load(viper.GetViper()), nil
}
