package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

func dellUltrabook() domain.SpecificationRecord {
	return domain.SpecificationRecord{
		Company:  "Dell",
		TypeName: "Ultrabook",
		CPUBrand: "Intel Core i7",
		Ram:      domain.IntPtr(16),
		Memory:   "512GB SSD",
		GPUBrand: "Intel",
		OpSys:    "Windows 11",
		Weight:   1.3,
		Inches:   domain.FloatPtr(13.3),
		Touch:    "No",
		IPS:      "Yes",
		Pixels:   "1920x1080",
	}
}

func TestEncodeDellUltrabook(t *testing.T) {
	row, err := New(Options{Strict: true}).Encode(dellUltrabook())
	require.NoError(t, err)

	assert.Equal(t, domain.FeatureRow{
		Company:      "Dell",
		TypeName:     "Ultrabook",
		CPUBrand:     "Intel Core i7",
		Ram:          16,
		GPUBrand:     "Intel",
		Gpus:         "Intel",
		OpSys:        "Windows 11",
		Weight:       1.3,
		Inches:       13.3,
		Touch:        0,
		IPS:          1,
		Pixels:       2073600,
		HDD:          0,
		SSD:          512,
		Hybrid:       0,
		FlashStorage: 0,
	}, row)
}

func TestEncodeIsDeterministic(t *testing.T) {
	enc := New(Options{Strict: true})
	spec := dellUltrabook()
	spec.Memory = "1TB HDD"

	first, err := enc.Encode(spec)
	require.NoError(t, err)
	second, err := enc.Encode(spec)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Values(), second.Values())
	assert.Equal(t, 1024, first.HDD)
	assert.Zero(t, first.SSD)
}

func TestEncodeValuesFollowRowSchema(t *testing.T) {
	row, err := New(Options{Strict: true}).Encode(dellUltrabook())
	require.NoError(t, err)

	values := row.Values()
	require.Len(t, values, len(domain.RowSchema))
	for i, v := range values {
		assert.Equal(t, domain.RowSchema[i].Name, v.Name)
		assert.Equal(t, domain.RowSchema[i].Kind, v.Kind)
	}
}

func TestEncodeRequiresSelections(t *testing.T) {
	enc := New(Options{Strict: false})

	noRam := dellUltrabook()
	noRam.Ram = nil
	_, err := enc.Encode(noRam)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrMissingSelection))
	assert.Contains(t, err.Error(), "ram")

	noInches := dellUltrabook()
	noInches.Inches = nil
	_, err = enc.Encode(noInches)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrMissingSelection))
	assert.Contains(t, err.Error(), "screen size")
}

func TestEncodeReportsMalformedStorage(t *testing.T) {
	spec := dellUltrabook()
	spec.Memory = "512GB"

	for _, strict := range []bool{true, false} {
		_, err := New(Options{Strict: strict}).Encode(spec)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.ErrParsing), "strict=%v: %v", strict, err)
	}
}

func TestEncodeStrictRejectsUnknownValues(t *testing.T) {
	spec := dellUltrabook()
	spec.Company = "Toshiba"
	spec.Touch = "maybe"
	spec.Weight = 7

	_, err := New(Options{Strict: true}).Encode(spec)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "Toshiba")
	assert.Contains(t, err.Error(), "weight")
}

func TestEncodeStrictRejectsUnknownFlag(t *testing.T) {
	spec := dellUltrabook()
	spec.IPS = "yes"

	_, err := New(Options{Strict: true}).Encode(spec)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrInvalidInput))
}

func TestEncodePermissiveCoercesFlags(t *testing.T) {
	spec := dellUltrabook()
	spec.Company = "Toshiba"
	spec.Touch = "maybe"
	spec.IPS = "yes"

	row, err := New(Options{Strict: false}).Encode(spec)
	require.NoError(t, err)
	assert.Equal(t, "Toshiba", row.Company)
	assert.Zero(t, row.Touch)
	assert.Zero(t, row.IPS)
}
