package model

import "time"

type ExtremumKind string

func (k ExtremumKind) String() string {
	return string(k)
}

const (
	Minimum ExtremumKind = "minimum"
	Maximum ExtremumKind = "maximum"
)

const (
	TimestampLayout = "02.01.2006 15:04:05" // DD.MM.YYYY HH:MM:SS
	ChartTickLayout = "02.01 15:04"         // DD.MM HH:MM

	PriceUnit = "Eur/MWh"
)

// Headers are the column labels shared by the console table and the spreadsheet.
var Headers = []string{"Zeitpunkt", "Market Price (Eur/MWh)", "Local Price (Eur/MWh)"}

func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(TimestampLayout)
}
