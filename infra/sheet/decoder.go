package sheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/radhian/inventory-costing/entity"

	"github.com/xuri/excelize/v2"
)

var ErrNoSheet = errors.New("workbook has no sheets")

// Decode reads the first sheet of an xlsx workbook into header-keyed rows.
// The first row supplies the header labels; rows after it become one
// entity.TableRow each. Cells under an empty header label are ignored.
// A header appearing twice keeps its first column.
func Decode(r io.Reader) ([]entity.TableRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	decoded := make([]entity.TableRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(entity.TableRow, len(header))
		for i, label := range header {
			label = strings.TrimSpace(label)
			if label == "" || i >= len(row) {
				continue
			}
			if _, seen := record[label]; seen {
				continue
			}
			record[label] = row[i]
		}
		decoded = append(decoded, record)
	}

	return decoded, nil
}
