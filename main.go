package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/anicoll/spotprice-report/cmd"
)

func main() {
	app := &cli.App{
		Name:   "spotprice-report",
		Usage:  "fetch, tabulate, export and chart local electricity spot prices",
		Action: cmd.ReportCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "zip",
				Usage: "zip code to query (ZIP_CODE)",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "market data api base url (API_BASE_URL)",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "spreadsheet path, overwritten each run (OUTPUT_FILE)",
			},
			&cli.StringFlag{
				Name:  "chart",
				Usage: "chart image path, .png/.svg/.pdf (CHART_FILE)",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "request timeout, 0 disables (REQUEST_TIMEOUT)",
			},
			&cli.StringFlag{
				Name:  "timezone",
				Usage: "IANA zone used to render timestamps (TIMEZONE)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (LOG_LEVEL)",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
