package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.2.4"
)

var rootCmd = &cobra.Command{
	Use:   "filldb",
	Short: "Fill a commerce database with random fixture data",
	Long: `
filldb populates an existing commerce database with synthetic catalog,
customer and order records for testing and demos.

It never creates or migrates schema; it writes through the platform's
existing tables and reads its reference data (stores, languages,
countries, roles) as-is.

Commands:
- fill   run one seeding pass from the terminal
- admin  serve the web configuration form`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("filldb version %s\n", Version)
			os.Exit(0)
		}

		cmd.Help()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./filldb.config.yaml)")
	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("filldb.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}

// maskDBURL masks credentials in a database URL for display
func maskDBURL(url string) string {
	if len(url) < 20 {
		return "***"
	}
	return url[:10] + "***" + url[len(url)-10:]
}
