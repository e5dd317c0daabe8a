// Package series reads numeric columns out of CSV text.
package series

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Columns names the CSV columns to read. An empty X generates the sequence
// 1, 2, 3, … instead; an empty Z reads no values.
type Columns struct {
	X string `json:"x,omitempty"`
	Y string `json:"y"`
	Z string `json:"z,omitempty"`
}

// Series holds parallel columns. Z is nil unless a Z column was requested.
type Series struct {
	X, Y, Z []float64
}

// Len returns the number of points.
func (s *Series) Len() int { return len(s.X) }

// ParseCSV reads the named columns from csvData, whose first record is the
// header. Rows whose selected cells are missing or not numbers are skipped.
func ParseCSV(csvData string, cols Columns, log logrus.FieldLogger) (*Series, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if cols.Y == "" {
		return nil, fmt.Errorf("no y column specified")
	}

	// Use strings.NewReader to treat the string data as a file
	r := csv.NewReader(strings.NewReader(csvData))
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data rows found in CSV")
	}
	header, rows := records[0], records[1:]

	// Map column names to indexes
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	lookup := func(name string) (int, error) {
		if name == "" {
			return -1, nil
		}
		i, ok := index[name]
		if !ok {
			return 0, fmt.Errorf("column %q not found in CSV header", name)
		}
		return i, nil
	}
	xi, err := lookup(cols.X)
	if err != nil {
		return nil, err
	}
	yi, err := lookup(cols.Y)
	if err != nil {
		return nil, err
	}
	zi, err := lookup(cols.Z)
	if err != nil {
		return nil, err
	}

	s := &Series{}
	if zi >= 0 {
		s.Z = []float64{}
	}
	for n, row := range rows {
		line := n + 2
		x := float64(n + 1)
		if xi >= 0 {
			if x, err = cell(row, xi); err != nil {
				log.WithError(err).WithField("line", line).Warn("skipping row")
				continue
			}
		}
		y, err := cell(row, yi)
		if err != nil {
			log.WithError(err).WithField("line", line).Warn("skipping row")
			continue
		}
		var z float64
		if zi >= 0 {
			if z, err = cell(row, zi); err != nil {
				log.WithError(err).WithField("line", line).Warn("skipping row")
				continue
			}
			s.Z = append(s.Z, z)
		}
		s.X = append(s.X, x)
		s.Y = append(s.Y, y)
	}
	if s.Len() < 2 {
		return nil, fmt.Errorf("need at least two numeric rows, found %d", s.Len())
	}
	return s, nil
}

func cell(row []string, i int) (float64, error) {
	if i >= len(row) {
		return 0, fmt.Errorf("missing column %d", i)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
	if err != nil {
		return 0, fmt.Errorf("column %d: %w", i, err)
	}
	return v, nil
}
