package input

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/osuushi/pointinpolygon/internal/log"
)

// Read (x, y) pairs from the first two columns of a CSV file. Headers, notes,
// and any other row that doesn't start with two numbers are skipped, as are
// rows the CSV parser itself rejects.
func ReadCSV(r io.Reader) ([]Point, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var points []Point
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				log.WithError(err).Debug("Skipping malformed CSV row")
				continue
			}
			return nil, errors.Wrap(err, "csv")
		}

		if len(record) < 2 {
			logSkipped(reader, record)
			continue
		}
		p, ok := ParsePair(record[0], record[1])
		if !ok {
			logSkipped(reader, record)
			continue
		}
		points = append(points, p)
	}
	return points, nil
}

func logSkipped(reader *csv.Reader, record []string) {
	if !log.IsDebug() {
		return
	}
	line, _ := reader.FieldPos(0)
	log.WithFields(log.Fields{"line": line, "row": record}).Debug("Skipping row without x,y values")
}
