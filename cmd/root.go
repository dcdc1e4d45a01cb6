package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fschutt/erp-site/internal/config"
)

var cfgFile string
var toolConfig config.Tool

var rootCmd = &cobra.Command{
	Use:   "erp-site",
	Short: "erp-site - multilingual static site generator",
	Long: `erp-site takes a declarative page/section description, per-language
string tables and a handful of media assets, and emits fully rendered HTML
pages for every configured language and page slug.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "tool config file (default is ./erp-site.yaml)")
}

func initializeConfig(_ *cobra.Command) error {
	v := viper.New()

	v.SetDefault("sitePath", "config.json")
	v.SetDefault("templatePath", "template.html")
	v.SetDefault("translationsDir", "translations")
	v.SetDefault("contentDir", "content")
	v.SetDefault("assetsDir", "assets")
	v.SetDefault("outputDir", "dist")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("erp-site")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("ERPSITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFile != "" {
				return fmt.Errorf("tool config file %s not found: %w", cfgFile, err)
			}
			// No tool config file is fine; defaults and env cover everything.
		} else {
			return fmt.Errorf("failed to read tool config file: %w", err)
		}
	} else {
		fmt.Println("Using tool config file:", v.ConfigFileUsed())
	}

	if err := v.Unmarshal(&toolConfig); err != nil {
		return fmt.Errorf("unable to decode tool config into struct: %w", err)
	}

	return nil
}
