// Package export writes storefront data to xlsx workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/larekdev/weblarek/internal/domain"
)

// Catalog writes the product list to an xlsx file, one row per product.
// Priceless items get an empty price cell.
func Catalog(products []domain.Product, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Catalog"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"ID", "Title", "Category", "Price", "Description"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for row, p := range products {
		values := []any{p.ID, p.Title, string(p.Category), nil, p.Description}
		if p.Priced() {
			values[3] = *p.Price
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Receipt writes a one-order summary: the confirmed id and total plus the
// purchased item ids.
func Receipt(res domain.OrderResult, order domain.OrderPayload, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Receipt"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]any{
		{"Order", res.ID},
		{"Total", res.Total},
		{"Payment", string(order.Payment)},
		{"Address", order.Address},
		{"Email", order.Email},
		{"Phone", order.Phone},
	}
	for i, r := range rows {
		for col, v := range r {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+1)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}
	for i, id := range order.Items {
		cell, _ := excelize.CoordinatesToCellName(1, len(rows)+2+i)
		if err := f.SetCellValue(sheet, cell, id); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
