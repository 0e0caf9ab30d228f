// Command diary is a terminal client for the Travel Diary API.
//
//	diary list
//	diary add -name Tbilisi -country Georgia -lat 41.71 -lng 44.79
//	diary image -query "Tbilisi, Georgia, city, travel"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/njprem/Travel_Diary_BackEnd/internal/client"
	"github.com/njprem/Travel_Diary_BackEnd/internal/config"
	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
	"github.com/njprem/Travel_Diary_BackEnd/internal/intake"
	"github.com/njprem/Travel_Diary_BackEnd/internal/logging"
)

func main() {
	cfg := config.LoadClient()
	logger, _ := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: "text",
		Output: os.Stderr,
	})

	if err := run(context.Background(), cfg, os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error().Err(err).Msg("diary")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.ClientConfig, args []string, out io.Writer, logger zerolog.Logger) error {
	if len(args) == 0 {
		return errors.New("usage: diary <list|add|image> [flags]")
	}

	base := cfg.APIBaseURL
	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("list", flag.ContinueOnError)
		api := fs.String("api", base, "API base URL")
		userOnly := fs.Bool("user", false, "Only show user-added destinations")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		c := client.New(*api, cfg.Timeout)
		var (
			list []domain.Destination
			err  error
		)
		if *userOnly {
			list, err = c.ListUser(ctx)
		} else {
			list, err = c.Catalog(ctx)
		}
		if err != nil {
			return err
		}
		return printDestinations(out, list)

	case "add":
		fs := flag.NewFlagSet("add", flag.ContinueOnError)
		api := fs.String("api", base, "API base URL")
		var in domain.DestinationInput
		fs.StringVar(&in.Name, "name", "", "Destination name (required)")
		fs.StringVar(&in.Country, "country", "", "Country (required)")
		fs.StringVar(&in.BestMonths, "months", "", "Best months to visit")
		fs.StringVar(&in.Festivals, "festivals", "", "Notable festivals")
		fs.StringVar(&in.Lat, "lat", "", "Latitude (required)")
		fs.StringVar(&in.Lng, "lng", "", "Longitude (required)")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		c := client.New(*api, cfg.Timeout)
		form := intake.NewForm(c, func(ctx context.Context) error {
			list, err := c.Catalog(ctx)
			if err != nil {
				return err
			}
			return printDestinations(out, list)
		}, func(n intake.Notification) {
			if n.Kind == intake.NotifyError {
				logger.Warn().Msg(n.Message)
				return
			}
			logger.Info().Msg(n.Message)
		})
		_, err := form.Submit(ctx, in)
		return err

	case "image":
		fs := flag.NewFlagSet("image", flag.ContinueOnError)
		api := fs.String("api", base, "API base URL")
		query := fs.String("query", "", "Search text")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		url, err := client.New(*api, cfg.Timeout).ImageURL(ctx, *query)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, url)
		return err

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printDestinations(out io.Writer, list []domain.Destination) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOMBRE\tPAÍS\tMEJORES MESES\tLAT,LNG\tORIGEN")
	for _, d := range list {
		source := "catálogo"
		if d.IsUserAdded {
			source = "agregado por ti"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s,%s\t%s\n", d.ID, d.Name, d.Country, d.BestMonths, d.Lat, d.Lng, source)
	}
	return tw.Flush()
}
