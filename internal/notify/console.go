package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/shanehull/screenwatch/internal/types"
)

// ConsoleReport prints the parsed screens as tables.
type ConsoleReport struct {
	out io.Writer
}

func NewConsoleReport(out io.Writer) *ConsoleReport {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleReport{out: out}
}

func (c *ConsoleReport) ReportScreens(screens []types.Screen) {
	for _, s := range screens {
		if s.Err != nil {
			fmt.Fprintf(c.out, "%s: %v\n", s.Name, s.Err)
			continue
		}

		t := table.NewWriter()
		t.SetOutputMirror(c.out)
		t.SetStyle(table.StyleLight)
		t.SetTitle(s.Name)
		t.AppendHeader(table.Row{"#", "Name", "CMP", "RSI", "Qtr Profit %", "FII Chg %"})
		for i, st := range s.Stocks {
			t.AppendRow(table.Row{i + 1, st.Name, st.Price, st.RSI, st.QtrProfit, st.FIIChange})
		}
		t.Render()
	}
}
