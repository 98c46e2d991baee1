package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"saarthi/internal/cli/formatter"
	"saarthi/internal/intelligence"
	"saarthi/internal/market"
	"saarthi/internal/session"
)

// App holds the services the CLI and TUI run against.
type App struct {
	Machine   *session.Machine
	Transport intelligence.TransportService
	Support   intelligence.SupportService
	Market    *market.Service

	// IsInteractive reports whether stdin is a terminal. The TUI refuses
	// to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "saarthi" command. Running it with no
// subcommand launches the TUI; "rates" and "crops" print the same market
// data for scripts and non-interactive shells.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "saarthi",
		Short: "Agri-logistics companion for farmers, transporters and buyers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("saarthi needs an interactive terminal; try `saarthi rates` for plain output")
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	root.AddCommand(
		newRatesCmd(app),
		newCropsCmd(app),
	)

	return root
}

func newRatesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Print today's mandi rates",
		RunE: func(cmd *cobra.Command, args []string) error {
			location, crop := marketFlags(cmd.Flags())

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Mandi Rates"))
			for _, r := range app.Market.Rates(location, crop) {
				fmt.Fprintf(out, "%-12s %-18s %s/quintal  %s  %s MSP %s\n",
					r.Crop, r.Mandi,
					formatter.Rupees(r.Price),
					formatter.TrendArrow(r.Trend, r.Change),
					formatter.Dim("·"),
					formatter.Rupees(r.MSP))
			}
			return nil
		},
	}
	cmd.Flags().StringP("location", "l", "", "mandi location to anchor the first row")
	cmd.Flags().StringP("crop", "c", "", "crop to anchor the first row")
	return cmd
}

// marketFlags reads the shared location/crop flag pair.
func marketFlags(flags *pflag.FlagSet) (location, crop string) {
	location, _ = flags.GetString("location")
	crop, _ = flags.GetString("crop")
	return location, crop
}

func newCropsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crops",
		Short: "Print crop availability across mandis",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, crop := marketFlags(cmd.Flags())

			out := cmd.OutOrStdout()
			listings := app.Market.Listings(crop)
			if len(listings) > 0 {
				fmt.Fprintln(out, formatter.Header(listings[0].Crop+" Availability"))
			}
			for _, l := range listings {
				tags := ""
				for _, t := range l.Tags {
					tags += " " + formatter.TagPill(t)
				}
				fmt.Fprintf(out, "%-24s %-12s %s/q  %d tons  %d km  est %s · ~%d hrs%s\n",
					l.Mandi, formatter.Dim(l.State),
					formatter.Rupees(l.PricePerQuintal),
					l.QuantityAvailable, l.DistanceKm,
					formatter.Rupees(l.LogisticsCostEst), l.ETAHours, tags)
			}
			return nil
		},
	}
	cmd.Flags().StringP("crop", "c", "", "crop to search for")
	return cmd
}
