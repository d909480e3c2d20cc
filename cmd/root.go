package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dothrak/Portfolio-2.0/internal/config"
)

const envPrefix = "PORTFOLIO"

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"verbose":  "verbose",
	"output":   "outputDir",
	"content":  "contentDir",
	"static":   "staticDir",
	"theme":    "theme",
	"markdown": "markdown",
	"port":     "port",
}

// app is the state shared by the commands of one invocation.
type app struct {
	cfgFile string
	cfg     config.Config
	logger  *zap.Logger
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Single-page portfolio generator",
		Long: `portfolio renders a personal portfolio (journey, research, publications,
projects and contact details) into one self-contained HTML page with a
light and a dark theme, and can serve it locally while you edit.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./config.yaml, then "+config.XDGConfigDir()+"/config.yaml)")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(NewBuildCmd(a))
	cmd.AddCommand(NewServeCmd(a))
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) initialize(cmd *cobra.Command) error {
	// A missing .env file is not an error.
	envErr := godotenv.Load()
	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env file: %w", envErr)
	}

	v := viper.New()
	for key, value := range config.Defaults() {
		v.SetDefault(key, value)
	}

	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath(config.XDGConfigDir())
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("failed to bind flags: %w", bindErr)
	}

	configErr := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if configErr != nil && (a.cfgFile != "" || !errors.As(configErr, &notFound)) {
		return fmt.Errorf("failed to read config file: %w", configErr)
	}

	if err := v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	logger, err := newLogger(a.cfg.Verbose)
	if err != nil {
		return err
	}
	a.logger = logger

	if configErr != nil {
		logger.Debug("no config file found, using defaults and environment")
	} else {
		logger.Debug("using config file", zap.String("path", v.ConfigFileUsed()))
	}
	if envErr == nil {
		logger.Debug("loaded environment variables from .env file")
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
