package screener

import "github.com/shanehull/screenwatch/internal/types"

// NotAvailable stands in for a field none of whose header spellings exist in the row.
const NotAvailable = "N/A"

// Header spellings per field, in priority order. The source site varies them
// between report types.
var (
	NameAliases      = []string{"Name"}
	PriceAliases     = []string{"CMP Rs.", "CMP", "Current Price"}
	RSIAliases       = []string{"RSI"}
	QtrProfitAliases = []string{"Qtr Profit Var %", "Qtr Profit Var"}
	FIIChangeAliases = []string{"Chg in FII Hold %", "Change in FII holding %", "FII Hold Chg %"}
)

// Lookup returns the value under the first alias present in row. An alias
// that is present wins even when its cell is blank; blank renders as NotAvailable.
func Lookup(row Row, aliases ...string) string {
	for _, alias := range aliases {
		if v, ok := row.Cells[alias]; ok {
			if v == "" {
				return NotAvailable
			}
			return v
		}
	}
	return NotAvailable
}

func StockFromRow(row Row) types.Stock {
	return types.Stock{
		Name:      Lookup(row, NameAliases...),
		Link:      row.Link,
		Price:     Lookup(row, PriceAliases...),
		RSI:       Lookup(row, RSIAliases...),
		QtrProfit: Lookup(row, QtrProfitAliases...),
		FIIChange: Lookup(row, FIIChangeAliases...),
	}
}
