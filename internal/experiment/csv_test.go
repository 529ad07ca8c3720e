package experiment

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
)

func sampleRecords() []Record {
	return []Record{
		{RunID: uuid.New(), Instance: "easy", Engine: EngineCSP, Round: 0, Solved: true, Nodes: 12, Branches: 30, Duration: 1500 * time.Microsecond},
		{RunID: uuid.New(), Instance: "easy", Engine: EngineCSP, Round: 1, Solved: true, Nodes: 14, Branches: 30, Duration: 1200 * time.Microsecond},
		{RunID: uuid.New(), Instance: "easy", Engine: EngineBacktrack, Round: 0, Solved: true, Nodes: 400, Branches: 350, Duration: 3 * time.Millisecond},
		{RunID: uuid.New(), Instance: "hard", Engine: EngineCSP, Round: 0, Solved: false, Limited: true, Nodes: 1000, Branches: 2800, Duration: 90 * time.Millisecond},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	records := sampleRecords()
	if err := WriteCSV(&buf, records); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != len(records)+1 {
		t.Fatalf("got %d rows, want %d", len(rows), len(records)+1)
	}
	if rows[0][0] != "run_id" || rows[0][8] != "duration_ms" {
		t.Errorf("unexpected header: %v", rows[0])
	}

	first := rows[1]
	if first[1] != "easy" || first[2] != "csp" || first[4] != "true" || first[6] != "12" {
		t.Errorf("unexpected first row: %v", first)
	}
	if first[8] != "1.500" {
		t.Errorf("duration_ms = %q, want 1.500", first[8])
	}
	if limited := rows[4][5]; limited != "true" {
		t.Errorf("limited column = %q, want true", limited)
	}
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.csv")
	if err := WriteCSVFile(path, sampleRecords()); err != nil {
		t.Fatalf("WriteCSVFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Error("CSV file is empty")
	}
}

func TestAggregate(t *testing.T) {
	engines, instances, means := aggregate(sampleRecords())

	if len(engines) != 2 || engines[0] != EngineBacktrack || engines[1] != EngineCSP {
		t.Errorf("engines = %v, want [backtrack csp]", engines)
	}
	if len(instances) != 2 || instances[0] != "easy" || instances[1] != "hard" {
		t.Errorf("instances = %v, want [easy hard]", instances)
	}

	if got := means[EngineCSP]["easy"]; got != 13 {
		t.Errorf("csp/easy mean = %v, want 13", got)
	}
	if got := means[EngineBacktrack]["easy"]; got != 400 {
		t.Errorf("backtrack/easy mean = %v, want 400", got)
	}
	if got := means[EngineCSP]["hard"]; got != 1000 {
		t.Errorf("csp/hard mean = %v, want 1000", got)
	}
}

func TestWritePlot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "effort.png")
	if err := WritePlot(path, sampleRecords()); err != nil {
		t.Fatalf("WritePlot failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}

	if err := WritePlot(filepath.Join(t.TempDir(), "x.png"), nil); err == nil {
		t.Error("plotting zero records should fail")
	}
}
