package service

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/360EntSecGroup-Skylar/excelize"

	"mdf_gestor/internal/api/dto"
)

const templateSheet = "Sheet1"

// templateColumns is the header row of the import template. One spreadsheet
// row registers one board with a single thickness.
var templateColumns = []string{
	"brandName",
	"name",
	"lineName",
	"texture",
	"finish",
	"standardDimension",
	"description",
	"colorCombinations",
	"edgeTapePricePerRoll",
	"edgeTapeRollLength",
	"thicknessMm",
	"workshopPrice",
	"counterPrice",
}

// ImportService handles spreadsheet onboarding: template download and batch
// import. Rows are independent creates; one bad row never rolls back its
// neighbours, the caller gets aggregated counts.
type ImportService struct {
	boardSvc *BoardService
}

func NewImportService(boardSvc *BoardService) *ImportService {
	return &ImportService{boardSvc: boardSvc}
}

// WriteTemplate writes an empty XLSX import template.
func (s *ImportService) WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	for i, col := range templateColumns {
		axis := fmt.Sprintf("%s1", columnName(i))
		f.SetCellValue(templateSheet, axis, col)
	}
	return f.Write(w)
}

// Import reads an XLSX upload and creates one board per data row.
func (s *ImportService) Import(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read spreadsheet: %v", ErrValidation, err)
	}

	sheet := f.GetSheetName(1)
	if sheet == "" {
		return nil, fmt.Errorf("%w: spreadsheet has no sheets", ErrValidation)
	}

	rows := f.GetRows(sheet)
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: spreadsheet has no data rows", ErrValidation)
	}

	colIndex := headerIndex(rows[0])
	result := &dto.ImportResult{}

	for i, row := range rows[1:] {
		rowNum := i + 2 // 1-based, after the header
		req, err := rowToRequest(row, colIndex)
		if err == nil {
			_, err = s.boardSvc.Create(ctx, req, nil)
		}
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, dto.ImportRowError{
				Row:     rowNum,
				Name:    cell(row, colIndex, "name"),
				Message: err.Error(),
			})
			continue
		}
		result.Imported++
	}

	return result, nil
}

// ==================== row parsing ====================

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	return index
}

func cell(row []string, index map[string]int, column string) string {
	i, ok := index[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func numericCell(row []string, index map[string]int, column string) (float64, error) {
	raw := cell(row, index, column)
	if raw == "" {
		return 0, nil
	}
	// Spreadsheets filled in by hand often carry decimal commas.
	raw = strings.ReplaceAll(raw, ",", ".")
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: column %s: %q is not a number", ErrValidation, column, raw)
	}
	return v, nil
}

func rowToRequest(row []string, index map[string]int) (*dto.CreateBoardReq, error) {
	brandName := cell(row, index, "brandName")
	name := cell(row, index, "name")
	if brandName == "" || name == "" {
		return nil, fmt.Errorf("%w: brandName and name are required", ErrValidation)
	}

	thicknessMm, err := numericCell(row, index, "thicknessMm")
	if err != nil {
		return nil, err
	}
	if thicknessMm <= 0 {
		return nil, fmt.Errorf("%w: thicknessMm is required", ErrValidation)
	}
	workshopPrice, err := numericCell(row, index, "workshopPrice")
	if err != nil {
		return nil, err
	}
	counterPrice, err := numericCell(row, index, "counterPrice")
	if err != nil {
		return nil, err
	}
	edgeTapePrice, err := numericCell(row, index, "edgeTapePricePerRoll")
	if err != nil {
		return nil, err
	}
	edgeTapeLength, err := numericCell(row, index, "edgeTapeRollLength")
	if err != nil {
		return nil, err
	}

	return &dto.CreateBoardReq{
		BrandName:            brandName,
		Name:                 name,
		LineName:             cell(row, index, "lineName"),
		Texture:              cell(row, index, "texture"),
		Finish:               cell(row, index, "finish"),
		StandardDimension:    cell(row, index, "standardDimension"),
		Description:          cell(row, index, "description"),
		ColorCombinations:    cell(row, index, "colorCombinations"),
		EdgeTapePricePerRoll: edgeTapePrice,
		EdgeTapeRollLength:   edgeTapeLength,
		Thicknesses: []dto.ThicknessReq{{
			ThicknessMm:   thicknessMm,
			WorkshopPrice: workshopPrice,
			CounterPrice:  counterPrice,
		}},
	}, nil
}

// columnName converts a zero-based column index into its spreadsheet letter.
func columnName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}
