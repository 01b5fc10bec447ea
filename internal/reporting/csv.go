package reporting

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{"curve_id", "role", "index", "value"}

// WriteCSV writes one row per point of every curve in the bundle,
// derived curves included.
func WriteCSV(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, c := range r.Bundle.All() {
		for _, p := range c.Points {
			record := []string{
				c.ID,
				string(c.Role),
				strconv.Itoa(p.Index),
				strconv.FormatFloat(p.Value, 'f', 6, 64),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
