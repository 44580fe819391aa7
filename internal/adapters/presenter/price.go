// Package presenter formats prediction results for people.
package presenter

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFormatter renders whole currency units with thousands separators.
// The fraction is truncated, never rounded.
type PriceFormatter struct {
	symbol  string
	printer *message.Printer
}

func NewPriceFormatter(symbol string) PriceFormatter {
	return PriceFormatter{
		symbol:  symbol,
		printer: message.NewPrinter(language.English),
	}
}

func (f PriceFormatter) Format(price float64) string {
	return f.symbol + f.printer.Sprintf("%d", int64(math.Trunc(price)))
}

// EstimatedPrice is the headline shown after a successful prediction.
func (f PriceFormatter) EstimatedPrice(price float64) string {
	return "Estimated Price: " + f.Format(price)
}

// Inches keeps one decimal so 14 reads as "14.0".
func Inches(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
