package importer

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// ReadWorkbook loads the first sheet of an xlsx stream as a raw cell grid.
// Formatting is ignored; cells arrive as their displayed values.
func ReadWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "opening workbook")
	}
	defer func() { _ = f.Close() }()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, errors.Wrapf(err, "reading sheet %s", sheetName)
	}
	return rows, nil
}
