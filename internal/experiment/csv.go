package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

var csvHeader = []string{
	"run_id", "instance", "engine", "round",
	"solved", "limited", "nodes", "branches", "duration_ms",
}

// WriteCSV writes one row per record, preceded by a header row.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, rec := range records {
		row := []string{
			rec.RunID.String(),
			rec.Instance,
			rec.Engine,
			strconv.Itoa(rec.Round),
			strconv.FormatBool(rec.Solved),
			strconv.FormatBool(rec.Limited),
			strconv.Itoa(rec.Nodes),
			strconv.Itoa(rec.Branches),
			strconv.FormatFloat(float64(rec.Duration)/float64(time.Millisecond), 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the records to a CSV file at path.
func WriteCSVFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	if err := WriteCSV(f, records); err != nil {
		f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}
