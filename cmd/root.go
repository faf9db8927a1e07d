package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"hireflow/internal/logger"
	"hireflow/internal/recruit"
	"hireflow/internal/service"
	"hireflow/internal/store"
)

const (
	app = "hireflow"

	defaultDataFile = "hireflow.json"
)

type Config struct {
	DataFile string    `mapstructure:"data-file"`
	AI       *AIConfig `mapstructure:"ai"`
}

type AIConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Provider        string        `mapstructure:"provider"`
	MinimumFitScore float64       `mapstructure:"minimum-fit-score"`
	Gemini          *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "hireflow is a recruiting workflow cli: jobs, candidates, applications, screening and interviews",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("data-file", "HIREFLOW_DATA_FILE"); err != nil {
		log.Fatalf("binding HIREFLOW_DATA_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is hireflow.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("data-file", "", "path to the snapshot data file (default is "+defaultDataFile+")")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("data-file", rootCmd.PersistentFlags().Lookup("data-file"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// The config file is optional; only an explicitly requested file must
	// parse successfully.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}
	if config == nil {
		config = &Config{}
	}
	return config, nil
}

// newLogger builds the zap logger from the persistent flags.
func newLogger() *zap.Logger {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return logger
}

// newService wires the file store behind the service layer.
func newService(logger *zap.Logger) *service.Service {
	dataFile := viper.GetString("data-file")
	if dataFile == "" {
		dataFile = defaultDataFile
	}

	logger.Debug("using data file", zap.String("path", dataFile))
	return service.New(store.NewFileStore(dataFile), logger)
}

// fail logs the error with its kind and exits non-zero.
func fail(logger *zap.Logger, msg string, err error) {
	logger.Fatal(msg,
		zap.String("kind", recruit.Kind(err)),
		zap.Error(err),
	)
}

// printJSON writes the operation result to stdout as indented JSON.
func printJSON(v any) {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("encoding output: %v", err)
	}
	fmt.Println(string(pretty))
}
