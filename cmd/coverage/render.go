package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

type format string

const (
	formatText format = "text"
	formatJSON format = "json"
	formatCSV  format = "csv"
)

func parseFormat(value string) (format, error) {
	switch f := format(strings.ToLower(strings.TrimSpace(value))); f {
	case formatText, formatJSON, formatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want text, json or csv)", value)
	}
}

// table is the flat rendering of a result used by the text and csv
// formats. JSON output encodes value instead.
type table struct {
	header []string
	rows   [][]string
	value  any
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func render(w io.Writer, f format, t table) error {
	switch f {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t.value)
	case formatCSV:
		cw := csv.NewWriter(w)
		if err := cw.Write(t.header); err != nil {
			return err
		}
		if err := cw.WriteAll(t.rows); err != nil {
			return err
		}
		return cw.Error()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(t.header, "\t"))
		for _, row := range t.rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
