// Package export renders the address table into downloadable documents.
package export

import (
	"bytes"
	"strconv"

	"portal/internal/domain/entity"
	"portal/internal/domain/service"
	"portal/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	addressSheet = "Addresses"

	// ContentTypeXLSX is the MIME type of spreadsheet exports.
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var addressHeaders = []string{"ID", "Address", "City", "Latitude", "Longitude", "Manager", "Devices"}

var addressColumnWidths = []float64{8, 40, 20, 12, 12, 28, 10}

type xlsxExporter struct{}

// NewXLSXExporter creates an exporter producing a single-sheet workbook.
func NewXLSXExporter() service.AddressExporter {
	return &xlsxExporter{}
}

func (e *xlsxExporter) ContentType() string {
	return ContentTypeXLSX
}

// Export writes one row per address below a frozen header row.
func (e *xlsxExporter) Export(addresses []entity.Address) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(addressSheet)
	if err != nil {
		return nil, errors.Wrap(err, "create sheet")
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, errors.Wrap(err, "delete default sheet")
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "create header style")
	}

	for i, header := range addressHeaders {
		if err := setCell(f, i+1, 1, header); err != nil {
			return nil, err
		}

		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, errors.Wrap(err, "column name")
		}
		if err := f.SetColWidth(addressSheet, col, col, addressColumnWidths[i]); err != nil {
			return nil, errors.Wrap(err, "set column width")
		}
	}

	lastHeader, _ := excelize.CoordinatesToCellName(len(addressHeaders), 1)
	if err := f.SetCellStyle(addressSheet, "A1", lastHeader, headerStyle); err != nil {
		return nil, errors.Wrap(err, "set header style")
	}

	for i := range addresses {
		row := i + 2
		for col, value := range addressRow(&addresses[i]) {
			if value == nil {
				continue
			}
			if err := setCell(f, col+1, row, value); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetPanes(addressSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return nil, errors.Wrap(err, "freeze header")
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, "write workbook")
	}

	return buf.Bytes(), nil
}

func addressRow(a *entity.Address) []any {
	row := make([]any, len(addressHeaders))
	row[0] = a.ID
	row[1] = a.Address
	row[2] = a.City
	if a.Latitude != nil {
		row[3] = *a.Latitude
	}
	if a.Longitude != nil {
		row[4] = *a.Longitude
	}
	row[5] = managerLabel(a)
	row[6] = len(a.Devices)

	return row
}

func managerLabel(a *entity.Address) any {
	switch {
	case a.Manager != nil && a.Manager.Name != "":
		return a.Manager.Name
	case a.HasManager():
		return "#" + strconv.FormatInt(*a.ManagerID, 10)
	default:
		return nil
	}
}

func setCell(f *excelize.File, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return errors.Wrap(err, "cell name")
	}
	if err := f.SetCellValue(addressSheet, cell, value); err != nil {
		return errors.Wrapf(err, "set cell %s", cell)
	}

	return nil
}
