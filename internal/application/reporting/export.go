package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
)

// exportHeader columnas del export, en el orden del reporte original.
var exportHeader = []string{"Date", "Time", "Type", "Quantity", "Notes", "Ending Stock"}

// ExportHistoryCSV exporta el historial de movimientos de un producto como CSV,
// el más reciente primero. encoding/csv se encarga del quoting RFC 4180: notas
// con comas o comillas quedan envueltas en dobles comillas y las comillas
// internas duplicadas.
func (uc *UseCase) ExportHistoryCSV(ctx context.Context, productID int64) (*dto.ExportFileDTO, error) {
	product, history, err := uc.historyFor(ctx, productID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}
	for _, m := range history {
		if err := w.Write(exportRow(m)); err != nil {
			return nil, fmt.Errorf("export csv: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("export csv: %w", err)
	}

	return &dto.ExportFileDTO{
		Filename:    exportFilename(product.SKU, "csv"),
		ContentType: "text/csv; charset=utf-8",
		Data:        buf.Bytes(),
	}, nil
}

// ExportHistoryXLSX misma información que el CSV pero como hoja de cálculo.
func (uc *UseCase) ExportHistoryXLSX(ctx context.Context, productID int64) (*dto.ExportFileDTO, error) {
	product, history, err := uc.historyFor(ctx, productID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Sheet1"

	for col, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("export xlsx: %w", err)
		}
	}
	for i, m := range history {
		for col, v := range exportRow(m) {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, fmt.Errorf("export xlsx: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("export xlsx: %w", err)
	}
	return &dto.ExportFileDTO{
		Filename:    exportFilename(product.SKU, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

func exportRow(m *entity.StockMovement) []string {
	return []string{
		m.CreatedAt.Format("02/01/2006"),
		m.CreatedAt.Format("15:04:05"),
		m.Type,
		strconv.FormatInt(m.Quantity, 10),
		m.Notes,
		strconv.FormatInt(m.EndingStock, 10),
	}
}

func exportFilename(sku, ext string) string {
	return fmt.Sprintf("History_%s_%s.%s", sku, time.Now().Format("2006-01-02"), ext)
}
