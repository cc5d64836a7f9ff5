package renderer

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/etnz/bookkeeper"
	md "github.com/nao1215/markdown"
)

// RollupMarkdown renders a cross-ledger aggregation to a markdown string.
func RollupMarkdown(r bookkeeper.Rollup) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("All-ledger %s rollup for %s", r.Kind, r.Period))
	doc.PlainText(fmt.Sprintf("Total: %s", Amount(r.Total, r.Target)))

	if len(r.ByLedger) > 0 {
		names := make([]string, 0, len(r.ByLedger))
		for name := range r.ByLedger {
			names = append(names, name)
		}
		sort.Strings(names)
		rows := make([][]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, []string{name, Amount(r.ByLedger[name], r.Target)})
		}
		doc.H2("By ledger")
		doc.Table(md.TableSet{
			Header: []string{"Ledger", fmt.Sprintf("Total (%s)", r.Target)},
			Rows:   rows,
		})
	}

	if len(r.ByCategory) > 0 {
		rows := make([][]string, 0, len(r.ByCategory))
		for _, cat := range sortedCategories(r.ByCategory) {
			rows = append(rows, []string{cat, Amount(r.ByCategory[cat], r.Target)})
		}
		doc.H2("By category")
		doc.Table(md.TableSet{
			Header: []string{"Category", fmt.Sprintf("Amount (%s)", r.Target)},
			Rows:   rows,
		})
	}

	return doc.String()
}
