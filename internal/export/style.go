package export

// Style holds the styling configuration for the exported workbook.
type Style struct {
	HeaderFill      string
	HeaderFontColor string

	// Fills for the conditional highlights on days-until-deadline and
	// priority cells.
	UrgentFill string // deadline under a week, or HIGH priority
	SoonFill   string // deadline under a month, or MEDIUM priority

	DateFormat     string
	CurrencyFormat string

	MinColWidth float64
	MaxColWidth float64
}

// Thresholds, in days, for the deadline highlights.
const (
	urgentDays = 7
	soonDays   = 30
)

// DefaultStyle returns the stock workbook styling.
func DefaultStyle() Style {
	return Style{
		HeaderFill:      "305496",
		HeaderFontColor: "FFFFFF",
		UrgentFill:      "FFC7CE",
		SoonFill:        "FFEB9C",
		DateFormat:      "yyyy-mm-dd",
		CurrencyFormat:  "$#,##0.00",
		MinColWidth:     10,
		MaxColWidth:     60,
	}
}
