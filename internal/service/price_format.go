package service

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFormatter muestra un precio con separador de miles y sin decimales.
type PriceFormatter struct {
	Symbol  string
	printer *message.Printer
}

func NewPriceFormatter(symbol string) PriceFormatter {
	return PriceFormatter{
		Symbol:  symbol,
		printer: message.NewPrinter(language.English),
	}
}

// Format redondea al entero con redondeo bancario y agrupa los miles: A$1,234,568.
func (f PriceFormatter) Format(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return f.Symbol + "n/a"
	}
	p := f.printer
	if p == nil {
		p = message.NewPrinter(language.English)
	}
	// El valor redondeado es entero y representable en float64, %.0f ya no redondea.
	rounded := decimal.NewFromFloat(price).RoundBank(0).InexactFloat64()
	return f.Symbol + p.Sprintf("%.0f", rounded)
}
