package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdf_gestor/internal/model"
)

func TestWriteTemplate(t *testing.T) {
	db := setupBoardTestDB(t)
	svc := NewImportService(newBoardService(t, db, nil))

	var buf bytes.Buffer
	require.NoError(t, svc.WriteTemplate(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)

	rows := f.GetRows(f.GetSheetName(1))
	require.NotEmpty(t, rows)
	assert.Equal(t, templateColumns, rows[0][:len(templateColumns)])
}

func TestImportRowsSucceedAndFailIndependently(t *testing.T) {
	db := setupBoardTestDB(t)
	require.NoError(t, db.Create(&model.Brand{Name: "Arauco", ShortCode: "M1"}).Error)

	boardSvc := newBoardService(t, db, nil)
	svc := NewImportService(boardSvc)

	// fill in the service's own template
	var tmpl bytes.Buffer
	require.NoError(t, svc.WriteTemplate(&tmpl))
	f, err := excelize.OpenReader(&tmpl)
	require.NoError(t, err)
	sheet := f.GetSheetName(1)

	// row 2: valid, with a decimal comma in the price
	f.SetCellValue(sheet, "A2", "Arauco")
	f.SetCellValue(sheet, "B2", "Carvalho")
	f.SetCellValue(sheet, "K2", 15)
	f.SetCellValue(sheet, "L2", "189,90")
	f.SetCellValue(sheet, "M2", 220)

	// row 3: missing name
	f.SetCellValue(sheet, "A3", "Arauco")
	f.SetCellValue(sheet, "K3", 18)

	// row 4: thickness is not a number
	f.SetCellValue(sheet, "A4", "Arauco")
	f.SetCellValue(sheet, "B4", "Nogueira")
	f.SetCellValue(sheet, "K4", "quinze")

	var filled bytes.Buffer
	require.NoError(t, f.Write(&filled))

	result, err := svc.Import(context.Background(), &filled)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 2, result.Failed)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 3, result.Errors[0].Row)
	assert.Equal(t, 4, result.Errors[1].Row)

	boards, err := boardSvc.List(context.Background(), "Arauco")
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "Carvalho", boards[0].Name)
	require.Len(t, boards[0].Thicknesses, 1)
	assert.Equal(t, "M1.4.99-CAR", boards[0].Thicknesses[0].InternalRef)
	assert.Equal(t, 189.90, boards[0].Thicknesses[0].WorkshopPrice)
	assert.Equal(t, model.PriceOriginManual, boards[0].Thicknesses[0].PriceOrigin)
}

func TestImportRejectsEmptySpreadsheet(t *testing.T) {
	db := setupBoardTestDB(t)
	svc := NewImportService(newBoardService(t, db, nil))

	var tmpl bytes.Buffer
	require.NoError(t, svc.WriteTemplate(&tmpl))

	_, err := svc.Import(context.Background(), &tmpl)
	require.ErrorIs(t, err, ErrValidation)
}
