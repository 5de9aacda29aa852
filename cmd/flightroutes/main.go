package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Domenick1991/flightroutes/internal/export"
	"github.com/Domenick1991/flightroutes/internal/loader"
	"github.com/Domenick1991/flightroutes/internal/search"
	"github.com/spf13/cobra"
)

var (
	format     string
	noHeader   bool
	minWait    int
	maxWait    int
	maxLegs    int
	maxResults int
)

var rootCmd = &cobra.Command{
	Use:   "flightroutes [file]",
	Short: "Enumerate multi-leg flight itineraries from a CSV of flight legs",
	Long: `Reads flight legs from a CSV file (or stdin when no file is given),
builds the airport graph and prints every itinerary of two or more legs
whose connections fit the wait window and never repeat an airport pair.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func run(cmd *cobra.Command, args []string) error {
	var input io.Reader = os.Stdin
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		input = file
	}

	dataset, err := loader.Load(input, !noHeader)
	if err != nil {
		return err
	}

	engine := search.NewEngine(
		time.Duration(minWait)*time.Minute,
		time.Duration(maxWait)*time.Minute,
		search.WithMaxLegs(maxLegs),
		search.WithMaxResults(maxResults),
	)
	records := export.ItineraryRecords(engine.ComputeItineraries(dataset.Airports))

	var payload []byte
	switch format {
	case "json":
		payload, err = export.ItinerariesJSON(records)
	case "csv":
		payload, err = export.ItinerariesCSV(records)
	default:
		return fmt.Errorf("unknown output format %q, want json or csv", format)
	}
	if err != nil {
		return err
	}

	if len(payload) == 0 || payload[len(payload)-1] != '\n' {
		payload = append(payload, '\n')
	}
	_, err = cmd.OutOrStdout().Write(payload)
	return err
}

func init() {
	rootCmd.Flags().StringVar(&format, "format", "json", "output format: json or csv")
	rootCmd.Flags().BoolVar(&noHeader, "no-header", false, "input has no CSV header row")
	rootCmd.Flags().IntVar(&minWait, "min-wait", 60, "minimum connection wait in minutes")
	rootCmd.Flags().IntVar(&maxWait, "max-wait", 240, "maximum connection wait in minutes")
	rootCmd.Flags().IntVar(&maxLegs, "max-legs", 0, "cap on itinerary length, 0 for unlimited")
	rootCmd.Flags().IntVar(&maxResults, "max-results", 0, "cap on emitted itineraries, 0 for unlimited")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
