// Command tides is a small sample client for the worldtides-go library. It
// fetches tide predictions for a coordinate and prints them as a table.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	worldtides "github.com/bbernstein/worldtides-go"
	"github.com/bbernstein/worldtides-go/internal/config"
	"github.com/bbernstein/worldtides-go/models"
)

var (
	dateStr   string
	days      int
	lat       string
	lon       string
	dataTypes []string

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var rootCmd = &cobra.Command{
	Use:   "tides",
	Short: "Fetch tide predictions from worldtides.info",
	Long: `Fetches tide heights and/or extremes for a coordinate and time window
from the worldtides.info API. The API key is read from the WORLDTIDES_API_KEY
environment variable or the api_key config value.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&dateStr, "date", time.Now().Format("2006-01-02"), "starting date (YYYY-MM-DD)")
	rootCmd.Flags().IntVar(&days, "days", 1, "number of days of predictions")
	rootCmd.Flags().StringVar(&lat, "lat", "", "latitude in decimal degrees")
	rootCmd.Flags().StringVar(&lon, "lon", "", "longitude in decimal degrees")
	rootCmd.Flags().StringSliceVar(&dataTypes, "data", []string{"extremes"}, "data kinds to request (heights, extremes)")
	_ = rootCmd.MarkFlagRequired("lat")
	_ = rootCmd.MarkFlagRequired("lon")

	viper.SetEnvPrefix("worldtides")
	viper.AutomaticEnv() // WORLDTIDES_API_KEY
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}
	cfg.InitializeLogging()

	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return fmt.Errorf("no API key: set WORLDTIDES_API_KEY")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return fmt.Errorf("parsing --date: %w", err)
	}

	kinds := make([]models.TideDataType, len(dataTypes))
	for i, dt := range dataTypes {
		kinds[i] = models.TideDataType(dt)
	}

	tidesClient, err := worldtides.New(worldtides.Config{
		APIKey:  apiKey,
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return err
	}

	log.Info().Str("date", dateStr).Int("days", days).Strs("data", dataTypes).Msg("requesting tide data")

	done := make(chan worldtides.Result[models.Tides], 1)
	tidesClient.GetTides(context.Background(), kinds, date, days, lat, lon, func(result worldtides.Result[models.Tides]) {
		done <- result
	})

	tides, err := (<-done).Get()
	if err != nil {
		return fmt.Errorf("fetching tides: %w", err)
	}

	printTides(tides)
	return nil
}

func printTides(tides models.Tides) {
	if tides.Extremes != nil {
		fmt.Println(headerStyle.Render("Extremes"))
		for _, e := range tides.Extremes.Extremes {
			style := highStyle
			if e.Type == models.TideTypeLow {
				style = lowStyle
			}
			fmt.Printf("%s  %7.3fm  %s\n",
				e.Time.Format(time.RFC3339),
				e.Height,
				style.Render(string(e.Type)),
			)
		}
	}

	if tides.Heights != nil {
		fmt.Println(headerStyle.Render("Heights"))
		for _, h := range tides.Heights.Heights {
			fmt.Printf("%s  %7.3fm\n", h.Time.Format(time.RFC3339), h.Height)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
