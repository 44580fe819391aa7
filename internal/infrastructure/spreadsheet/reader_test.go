package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

const sampleCSV = `Company,TypeName,Cpu_Brand,Ram,Memory,Gpu_Brand,OpSys,Weight,Inches,Touch,Ips,Pixels
Dell,Ultrabook,Intel Core i7,16,512GB SSD,Intel,Windows 11,1.3,13.3,No,Yes,1920x1080
HP,Notebook,Intel Core i5,,1TB HDD,Intel,Windows 10,2.1,,No,No,1366x768
,,,,,,,,,,,
Asus,Gaming,AMD Ryzen,lots,1TB SSD,Nvidia,Linux,2.5,15.6,No,Yes,1920x1080
`

func TestReadCSV(t *testing.T) {
	rows, err := Read("batch.csv", strings.NewReader(sampleCSV), 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	first := rows[0]
	require.NoError(t, first.Err)
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "Dell", first.Spec.Company)
	assert.Equal(t, "Intel Core i7", first.Spec.CPUBrand)
	require.NotNil(t, first.Spec.Ram)
	assert.Equal(t, 16, *first.Spec.Ram)
	require.NotNil(t, first.Spec.Inches)
	assert.Equal(t, 13.3, *first.Spec.Inches)
	assert.Equal(t, 1.3, first.Spec.Weight)

	second := rows[1]
	require.NoError(t, second.Err)
	assert.Nil(t, second.Spec.Ram, "empty ram cell stays unselected")
	assert.Nil(t, second.Spec.Inches)

	third := rows[2]
	assert.Equal(t, 5, third.Line)
	require.Error(t, third.Err)
	assert.True(t, domain.IsKind(third.Err, domain.ErrInvalidInput))
}

func TestReadCSVAcceptsSnakeCaseHeaders(t *testing.T) {
	doc := "company,type_name,cpu_brand,ram,memory,gpu_brand,op_sys,weight,inches,touch,ips,pixels\n" +
		"Apple,Ultrabook,Intel Core i5,8GB,256GB SSD,Intel,Mac OS,1.2,13.3,No,Yes,1600x900\n"
	rows, err := ReadCSV(strings.NewReader(doc), 0)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NoError(t, rows[0].Err)
	assert.Equal(t, 8, *rows[0].Spec.Ram)
	assert.Equal(t, "Mac OS", rows[0].Spec.OpSys)
}

func TestReadCSVAcceptsSpacedRamUnit(t *testing.T) {
	doc := "company,type_name,cpu_brand,ram,memory,gpu_brand,op_sys,weight,inches,touch,ips,pixels\n" +
		"Lenovo,Notebook,Intel Core i5,16 GB,512GB SSD,Intel,Windows 11,1.7,14,No,Yes,1920x1080\n" +
		"Lenovo,Notebook,Intel Core i5,8 gb,256GB SSD,Intel,Windows 11,1.7,14,No,Yes,1920x1080\n"
	rows, err := ReadCSV(strings.NewReader(doc), 0)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for i, want := range []int{16, 8} {
		require.NoError(t, rows[i].Err)
		require.NotNil(t, rows[i].Spec.Ram)
		assert.Equal(t, want, *rows[i].Spec.Ram)
	}
}

func TestReadRejectsMissingColumns(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("Company,Ram\nDell,8\n"), 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "memory")
}

func TestReadEnforcesRowLimit(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(sampleCSV), 2)
	assert.Error(t, err)
}

func TestReadRejectsUnknownExtension(t *testing.T) {
	_, err := Read("batch.ods", strings.NewReader(""), 0)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	values := [][]any{
		{"Company", "TypeName", "Cpu_Brand", "Ram", "Memory", "Gpu_Brand", "OpSys", "Weight", "Inches", "Touch", "Ips", "Pixels"},
		{"Lenovo", "Notebook", "Intel Core i5", 8, "256GB SSD", "Intel", "Windows 10", 1.8, 15.6, "Yes", "No", "1920x1080"},
	}
	for i, row := range values {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	rows, err := Read("batch.xlsx", &buf, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NoError(t, rows[0].Err)
	assert.Equal(t, "Lenovo", rows[0].Spec.Company)
	assert.Equal(t, 8, *rows[0].Spec.Ram)
	assert.Equal(t, 15.6, *rows[0].Spec.Inches)
	assert.Equal(t, "Yes", rows[0].Spec.Touch)
}
