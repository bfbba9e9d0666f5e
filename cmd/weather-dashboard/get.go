package main

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <city>",
	Short: "Print the weather for a city as JSON",
	Example: `  weather-dashboard get London
  weather-dashboard get san francisco`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*cfg.HTTPTimeout)
		defer cancel()

		data, err := newWeatherService(cfg).GetWeatherData(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
