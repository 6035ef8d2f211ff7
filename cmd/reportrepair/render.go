package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"reportrepair/internal/history"
	"reportrepair/internal/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	labelStyle   = lipgloss.NewStyle().Bold(true)
	productStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	headerStyle  = lipgloss.NewStyle().Underline(true)

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderHeader(w io.Writer, path string) {
	fmt.Fprintln(w, headerStyle.Render(path))
}

func renderResult(w io.Writer, res *report.Result) {
	pairs := make([]string, len(res.Pairs))
	for i, p := range res.Pairs {
		pairs[i] = p.String()
	}
	fmt.Fprintf(w, "%s [%s]\n", labelStyle.Render("candidates:"), strings.Join(pairs, ", "))
	fmt.Fprintf(w, "%s %d - %d\n", labelStyle.Render("pair:"), res.First.First, res.First.Second)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("product:"), productStyle.Render(strconv.FormatInt(res.Product, 10)))
}

func renderRuns(w io.Writer, runs []history.Run) {
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.ID,
			r.CreatedAt.Local().Format(time.DateTime),
			r.Input,
			strconv.FormatInt(int64(r.Target), 10),
			fmt.Sprintf("%d - %d", r.First, r.Second),
			strconv.FormatInt(r.Product, 10),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "WHEN", "INPUT", "TARGET", "PAIR", "PRODUCT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			return tableCellStyle
		})
	fmt.Fprintln(w, t.Render())
}
