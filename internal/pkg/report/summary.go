package report

import (
	"fmt"
	"io"
	"time"

	"github.com/anicoll/spotprice-report/internal/pkg/model"
)

// Summary prints the highest and lowest local price followed by the request duration.
func Summary(w io.Writer, lowest, highest model.Extremum, fetchDuration time.Duration, loc *time.Location) error {
	for _, e := range []model.Extremum{highest, lowest} {
		if err := extremum(w, e, loc); err != nil {
			return err
		}
	}
	return Duration(w, fetchDuration)
}

func extremum(w io.Writer, e model.Extremum, loc *time.Location) error {
	title := "Niedrigster Preis"
	if e.Kind == model.Maximum {
		title = "Höchster Preis"
	}
	_, err := fmt.Fprintf(w, "\n%s:\nZeitpunkt: %s\nLokal-Preis: %.2f %s\n",
		title, model.FormatTimestamp(e.Timestamp, loc), e.Price, model.PriceUnit)
	return err
}

func Duration(w io.Writer, d time.Duration) error {
	_, err := fmt.Fprintf(w, "\nDauer des API-Requests: %.2f ms\n", float64(d)/float64(time.Millisecond))
	return err
}

func FetchFailed(w io.Writer, d time.Duration) error {
	if _, err := fmt.Fprintln(w, "Fehler beim API-Aufruf."); err != nil {
		return err
	}
	return Duration(w, d)
}

func NoData(w io.Writer, d time.Duration) error {
	if _, err := fmt.Fprintln(w, "\nKeine Daten erhalten."); err != nil {
		return err
	}
	return Duration(w, d)
}
