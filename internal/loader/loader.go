package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"cpu-scheduler-sim/internal/core"
)

var ErrInvalidRecord = errors.New("invalid process record")

var columns = []string{"pid", "arrival_time", "burst_time"}

// LoadFile reads processes from a CSV file.
func LoadFile(path string) ([]*core.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open process file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load reads pid,arrival_time,burst_time rows. A header row is optional;
// when present it may list the columns in any order and extra columns are
// ignored.
func Load(r io.Reader) ([]*core.Process, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	index := map[string]int{"pid": 0, "arrival_time": 1, "burst_time": 2}
	first := 0
	if _, err := strconv.Atoi(strings.TrimSpace(rows[0][0])); err != nil {
		index, err = headerIndex(rows[0])
		if err != nil {
			return nil, err
		}
		first = 1
	}

	processes := make([]*core.Process, 0, len(rows)-first)
	for i := first; i < len(rows); i++ {
		values, err := parseRow(rows[i], index)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidRecord, i+1, err)
		}
		processes = append(processes, core.NewProcess(values[0], values[1], values[2]))
	}
	return processes, nil
}

func headerIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(columns))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, c := range columns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("%w: header is missing column %q", ErrInvalidRecord, c)
		}
	}
	return index, nil
}

func parseRow(row []string, index map[string]int) ([3]int, error) {
	var values [3]int
	for i, c := range columns {
		pos := index[c]
		if pos >= len(row) {
			return values, fmt.Errorf("missing %s", c)
		}
		v, err := strconv.Atoi(strings.TrimSpace(row[pos]))
		if err != nil {
			return values, fmt.Errorf("%s: %q is not an integer", c, row[pos])
		}
		values[i] = v
	}
	return values, nil
}
