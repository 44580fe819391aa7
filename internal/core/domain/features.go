package domain

import (
	"fmt"
	"strings"
)

type FeatureKind string

const (
	FeatureCategorical FeatureKind = "categorical"
	FeatureNumeric     FeatureKind = "numeric"
)

// Column names as the trained model expects them.
const (
	ColCompany      = "Company"
	ColTypeName     = "TypeName"
	ColCPUBrand     = "Cpu_Brand"
	ColRam          = "Ram"
	ColGPUBrand     = "Gpu_Brand"
	ColGpus         = "Gpus"
	ColOpSys        = "OpSys"
	ColWeight       = "Weight"
	ColInches       = "Inches"
	ColTouch        = "Touch"
	ColIPS          = "Ips"
	ColPixels       = "Pixels"
	ColHDD          = "HDD"
	ColSSD          = "SSD"
	ColHybrid       = "Hybrid"
	ColFlashStorage = "Flash_Storage"
)

type FeatureSpec struct {
	Name string      `json:"name" yaml:"name"`
	Kind FeatureKind `json:"kind" yaml:"kind"`
}

// FeatureSchema is the named, ordered column contract between the encoder
// and the model.
type FeatureSchema []FeatureSpec

// RowSchema is the column order produced by the encoder.
var RowSchema = FeatureSchema{
	{Name: ColCompany, Kind: FeatureCategorical},
	{Name: ColTypeName, Kind: FeatureCategorical},
	{Name: ColCPUBrand, Kind: FeatureCategorical},
	{Name: ColRam, Kind: FeatureNumeric},
	{Name: ColGPUBrand, Kind: FeatureCategorical},
	{Name: ColGpus, Kind: FeatureCategorical},
	{Name: ColOpSys, Kind: FeatureCategorical},
	{Name: ColWeight, Kind: FeatureNumeric},
	{Name: ColInches, Kind: FeatureNumeric},
	{Name: ColTouch, Kind: FeatureNumeric},
	{Name: ColIPS, Kind: FeatureNumeric},
	{Name: ColPixels, Kind: FeatureNumeric},
	{Name: ColHDD, Kind: FeatureNumeric},
	{Name: ColSSD, Kind: FeatureNumeric},
	{Name: ColHybrid, Kind: FeatureNumeric},
	{Name: ColFlashStorage, Kind: FeatureNumeric},
}

func (s FeatureSchema) Names() []string {
	names := make([]string, 0, len(s))
	for _, f := range s {
		names = append(names, f.Name)
	}
	return names
}

// Compare returns nil when other declares the same columns, kinds and order.
func (s FeatureSchema) Compare(other FeatureSchema) error {
	if len(s) != len(other) {
		return fmt.Errorf("expected %d columns [%s], artifact declares %d [%s]",
			len(s), strings.Join(s.Names(), ","), len(other), strings.Join(other.Names(), ","))
	}
	for i := range s {
		if s[i].Name != other[i].Name {
			return fmt.Errorf("column %d: expected %q, artifact declares %q", i, s[i].Name, other[i].Name)
		}
		if other[i].Kind != "" && s[i].Kind != other[i].Kind {
			return fmt.Errorf("column %q: expected %s, artifact declares %s", s[i].Name, s[i].Kind, other[i].Kind)
		}
	}
	return nil
}

// FeatureValue is one cell of a feature row. Exactly one of Text or Number
// is meaningful, depending on Kind.
type FeatureValue struct {
	Name   string
	Kind   FeatureKind
	Text   string
	Number float64
}

// Any returns the cell as a JSON-friendly value.
func (v FeatureValue) Any() any {
	if v.Kind == FeatureCategorical {
		return v.Text
	}
	return v.Number
}

// FeatureRow is the encoded, model-ready form of a SpecificationRecord.
type FeatureRow struct {
	Company      string  `json:"Company"`
	TypeName     string  `json:"TypeName"`
	CPUBrand     string  `json:"Cpu_Brand"`
	Ram          int     `json:"Ram"`
	GPUBrand     string  `json:"Gpu_Brand"`
	Gpus         string  `json:"Gpus"`
	OpSys        string  `json:"OpSys"`
	Weight       float64 `json:"Weight"`
	Inches       float64 `json:"Inches"`
	Touch        int     `json:"Touch"`
	IPS          int     `json:"Ips"`
	Pixels       int     `json:"Pixels"`
	HDD          int     `json:"HDD"`
	SSD          int     `json:"SSD"`
	Hybrid       int     `json:"Hybrid"`
	FlashStorage int     `json:"Flash_Storage"`
}

// Values lists the row cells in RowSchema order.
func (r FeatureRow) Values() []FeatureValue {
	cat := func(name, v string) FeatureValue {
		return FeatureValue{Name: name, Kind: FeatureCategorical, Text: v}
	}
	num := func(name string, v float64) FeatureValue {
		return FeatureValue{Name: name, Kind: FeatureNumeric, Number: v}
	}
	return []FeatureValue{
		cat(ColCompany, r.Company),
		cat(ColTypeName, r.TypeName),
		cat(ColCPUBrand, r.CPUBrand),
		num(ColRam, float64(r.Ram)),
		cat(ColGPUBrand, r.GPUBrand),
		cat(ColGpus, r.Gpus),
		cat(ColOpSys, r.OpSys),
		num(ColWeight, r.Weight),
		num(ColInches, r.Inches),
		num(ColTouch, float64(r.Touch)),
		num(ColIPS, float64(r.IPS)),
		num(ColPixels, float64(r.Pixels)),
		num(ColHDD, float64(r.HDD)),
		num(ColSSD, float64(r.SSD)),
		num(ColHybrid, float64(r.Hybrid)),
		num(ColFlashStorage, float64(r.FlashStorage)),
	}
}
