package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/glebarez/sqlite"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/quantauri/bandplot"
	"github.com/quantauri/bandplot/feed"
	"github.com/quantauri/bandplot/indicator"
	"github.com/quantauri/bandplot/model"
	"github.com/quantauri/bandplot/notification"
	"github.com/quantauri/bandplot/plot"
	"github.com/quantauri/bandplot/storage"
	"github.com/quantauri/bandplot/tools/metrics"
)

func main() {
	app := &cli.App{
		Name:     "bandplot",
		HelpName: "bandplot",
		Usage:    "Render technical-indicator tables as multi-panel charts",
		Commands: []*cli.Command{
			chartCommand(),
			computeCommand(),
			describeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func chartCommand() *cli.Command {
	return &cli.Command{
		Name:     "chart",
		HelpName: "chart",
		Usage:    "Render a CSV indicator table to a PNG chart",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "csv",
				Aliases:  []string{"c"},
				Usage:    "eg. ./bands.csv",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "chart",
				Usage:   "bollinger, overlay or macd",
				Value:   "bollinger",
				Aliases: []string{"t"},
			},
			&cli.IntFlag{
				Name:    "threshold",
				Usage:   "keep rows with index >= threshold (eg. 5000)",
				Aliases: []string{"n"},
			},
			&cli.Float64Flag{
				Name:  "width",
				Usage: "figure width in inches",
				Value: plot.DefaultWidth,
			},
			&cli.Float64Flag{
				Name:  "height",
				Usage: "figure height in inches",
				Value: plot.DefaultHeight,
			},
			&cli.IntFlag{
				Name:  "dpi",
				Usage: "raster density",
				Value: plot.DefaultDPI,
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "eg. ./bollinger.png",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "journal",
				Usage: "buntdb journal file (eg. ./renders.db)",
			},
			&cli.StringFlag{
				Name:  "journal-sqlite",
				Usage: "sqlite journal database (eg. ./renders.sqlite)",
			},
			&cli.StringFlag{
				Name:    "telegram-token",
				Usage:   "send the chart to a Telegram chat",
				EnvVars: []string{"TELEGRAM_TOKEN"},
			},
			&cli.Int64Flag{
				Name:    "telegram-chat",
				Usage:   "destination chat ID",
				EnvVars: []string{"TELEGRAM_CHAT"},
			},
		},
		Action: func(c *cli.Context) error {
			specs, err := presetSpecs(c.String("chart"))
			if err != nil {
				return err
			}

			options := []bandplot.Option{
				bandplot.WithFigureSize(c.Float64("width"), c.Float64("height")),
				bandplot.WithDPI(c.Int("dpi")),
				bandplot.WithOutput(c.String("output")),
			}

			if c.IsSet("threshold") {
				options = append(options,
					bandplot.WithWindow(model.IndexAtLeast(c.Int("threshold"))))
			}

			if file := c.String("journal"); file != "" {
				store, err := storage.FromFile(file)
				if err != nil {
					return err
				}
				options = append(options, bandplot.WithStorage(store))
			} else if file := c.String("journal-sqlite"); file != "" {
				store, err := storage.FromSQL(sqlite.Open(file))
				if err != nil {
					return err
				}
				options = append(options, bandplot.WithStorage(store))
			}

			if token := c.String("telegram-token"); token != "" {
				notifier, err := notification.NewTelegram(token, c.Int64("telegram-chat"))
				if err != nil {
					return err
				}
				options = append(options, bandplot.WithNotifier(notifier))
			}

			pipeline, err := bandplot.NewPipeline(feed.NewCSV(c.String("csv")), specs, options...)
			if err != nil {
				return err
			}

			if err := pipeline.Run(c.Context); err != nil {
				return err
			}
			return pipeline.Summary(os.Stdout)
		},
	}
}

func computeCommand() *cli.Command {
	return &cli.Command{
		Name:     "compute",
		HelpName: "compute",
		Usage:    "Compute the indicator table from a close-price CSV",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "csv",
				Aliases:  []string{"c"},
				Usage:    "input CSV with a close-price column",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "column",
				Usage:   "close-price column name",
				Value:   "close",
				Aliases: []string{"k"},
			},
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "eg. ./indicators.csv",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			frame, err := feed.NewCSV(c.String("csv")).Frame(c.Context)
			if err != nil {
				return err
			}

			column := c.String("column")
			close, ok := frame.Column(column)
			if !ok {
				return fmt.Errorf("column %q not found in %s", column, c.String("csv"))
			}

			table, err := indicator.OverlayFrame(close)
			if err != nil {
				return err
			}
			return feed.Write(table, c.String("output"))
		},
	}
}

func describeCommand() *cli.Command {
	return &cli.Command{
		Name:     "describe",
		HelpName: "describe",
		Usage:    "Print per-column statistics of a CSV table",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "csv",
				Aliases:  []string{"c"},
				Usage:    "eg. ./bands.csv",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "histogram",
				Usage:   "also print a histogram of the given column",
				Aliases: []string{"g"},
			},
		},
		Action: func(c *cli.Context) error {
			frame, err := feed.NewCSV(c.String("csv")).Frame(c.Context)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Column", "Count", "Missing", "Min", "Max", "Mean", "Std"})
			for _, name := range frame.Columns() {
				values, _ := frame.Column(name)
				summary := metrics.Describe(values)
				table.Append([]string{
					name,
					strconv.Itoa(summary.Count),
					strconv.Itoa(summary.Missing),
					fmt.Sprintf("%.4f", summary.Min),
					fmt.Sprintf("%.4f", summary.Max),
					fmt.Sprintf("%.4f", summary.Mean),
					fmt.Sprintf("%.4f", summary.Std),
				})
			}
			table.Render()

			if name := c.String("histogram"); name != "" {
				values, ok := frame.Column(name)
				if !ok {
					return fmt.Errorf("column %q not found in %s", name, c.String("csv"))
				}
				fmt.Printf("------ %s -------\n", name)
				return metrics.PrintHistogram(os.Stdout, values)
			}
			return nil
		},
	}
}

func presetSpecs(name string) ([]plot.PanelSpec, error) {
	switch name {
	case "bollinger":
		return plot.BollingerPanels(), nil
	case "overlay":
		return plot.OverlayPanels(), nil
	case "macd":
		return plot.MACDPanels(), nil
	default:
		return nil, fmt.Errorf("unknown chart preset %q", name)
	}
}
