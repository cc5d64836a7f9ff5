package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/bookkeeper"
	md "github.com/nao1215/markdown"
)

// RatesMarkdown renders the exchange-rate table.
func RatesMarkdown(rates *bookkeeper.Rates) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Exchange rates (base %s)", bookkeeper.BaseCurrency))

	var rows [][]string
	var updated string
	for _, code := range rates.Supported() {
		info, err := rates.Info(code)
		if err != nil {
			continue
		}
		rows = append(rows, []string{
			info.Code,
			bookkeeper.CurrencyNames[info.Code],
			info.RateToBase.String(),
			info.RateFromBase.String(),
		})
		updated = info.LastUpdated.Format("2006-01-02 15:04:05")
	}
	doc.Table(md.TableSet{
		Header: []string{"Code", "Currency", "1 " + bookkeeper.BaseCurrency + " =", "1 unit in " + bookkeeper.BaseCurrency},
		Rows:   rows,
	})
	doc.PlainText("Last updated: " + updated)

	return doc.String()
}
