package main

import (
	"errors"
	"fmt"
	"os"

	"chefs-menu/internal/app"
	"chefs-menu/internal/config"
	"chefs-menu/internal/logger"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	v       = viper.New()
)

var rootCmd = &cobra.Command{
	Use:           "chefs-menu",
	Short:         "Edit a restaurant menu in a desktop window",
	Long:          `chefs-menu opens a window listing the dishes on a menu and a form for adding new ones. The menu lives in memory for as long as the window stays open.`,
	Version:       app.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(v)
		if err != nil {
			return err
		}

		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		log := logger.New(level, cfg.JSONLogs)

		if used := v.ConfigFileUsed(); used != "" {
			log.Info("Main", "using config file", map[string]interface{}{"path": used})
		}

		application, err := app.NewApplication(fyneapp.NewWithID(app.AppID), cfg, log)
		if err != nil {
			return fmt.Errorf("initialize application: %w", err)
		}
		return application.Run()
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chefs-menu.yaml)")

	rootCmd.Flags().String("title", "Chef's Menu", "Window title and page heading")
	rootCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().Bool("json-logs", false, "Write logs as JSON instead of console text")
	rootCmd.Flags().Int("seed-demo", 0, "Start with this many sample dishes")
	rootCmd.Flags().String("logo", "", "Image file to show instead of the built-in logo")

	config.SetDefaults(v)
	bindFlag("title", "title")
	bindFlag("log_level", "log-level")
	bindFlag("json_logs", "json-logs")
	bindFlag("seed_demo", "seed-demo")
	bindFlag("logo_path", "logo")
}

func bindFlag(key, flag string) {
	if err := v.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("bind flag %s: %v", flag, err))
	}
}

func initConfig() {
	if err := config.LoadDotEnv(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "Error loading .env:", err)
		os.Exit(1)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		v.AddConfigPath(home)
		v.SetConfigType("yaml")
		v.SetConfigName(".chefs-menu")
	}

	config.BindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "Error reading config:", err)
			os.Exit(1)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
