package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var ErrInvalidCSV = errors.New("invalid process file")

// ParseCSV reads one job per row: pid,burst,arrival[,priority]. Blank lines
// and lines starting with # are skipped.
func ParseCSV(r io.Reader) ([]Job, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 || len(row) > 4 {
			return nil, fmt.Errorf("%w: line %d has %d fields, want 3 or 4", ErrInvalidCSV, i+1, len(row))
		}

		values := make([]int, len(row)-1)
		for j, field := range row[1:] {
			values[j], err = strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidCSV, i+1, err)
			}
		}

		job := Job{
			ProcessId:   strings.TrimSpace(row[0]),
			BurstTime:   values[0],
			ArrivalTime: values[1],
		}
		if len(values) == 3 {
			job.Priority = values[2]
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
