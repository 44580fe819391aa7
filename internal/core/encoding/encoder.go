// Package encoding turns a SpecificationRecord into the FeatureRow consumed
// by the price model.
package encoding

import (
	"errors"
	"fmt"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

type Options struct {
	// Strict rejects unknown catalog values, malformed Yes/No flags and
	// ambiguous storage descriptors. When false the encoder mirrors the
	// legacy coercions: any flag other than "Yes" is 0 and HDD wins over SSD.
	Strict  bool
	Catalog domain.Catalog
}

type Encoder struct {
	strict  bool
	catalog domain.Catalog
}

func New(opts Options) *Encoder {
	catalog := opts.Catalog
	if len(catalog.Companies) == 0 {
		catalog = domain.DefaultCatalog()
	}
	return &Encoder{strict: opts.Strict, catalog: catalog}
}

func (e *Encoder) Schema() domain.FeatureSchema { return domain.RowSchema }

// Encode is deterministic: identical records always produce identical rows.
func (e *Encoder) Encode(spec domain.SpecificationRecord) (domain.FeatureRow, error) {
	if err := CheckSelections(spec); err != nil {
		return domain.FeatureRow{}, err
	}
	if e.strict {
		if err := e.validate(spec); err != nil {
			return domain.FeatureRow{}, err
		}
	}

	size, kind, err := parseStorage(spec.Memory, e.strict)
	if err != nil {
		return domain.FeatureRow{}, err
	}
	pixels, err := resolutionPixels(spec.Pixels, e.strict)
	if err != nil {
		return domain.FeatureRow{}, err
	}
	touch, err := e.flag("touch", spec.Touch)
	if err != nil {
		return domain.FeatureRow{}, err
	}
	ips, err := e.flag("ips", spec.IPS)
	if err != nil {
		return domain.FeatureRow{}, err
	}

	row := domain.FeatureRow{
		Company:  spec.Company,
		TypeName: spec.TypeName,
		CPUBrand: spec.CPUBrand,
		Ram:      *spec.Ram,
		GPUBrand: spec.GPUBrand,
		Gpus:     spec.GPUBrand,
		OpSys:    spec.OpSys,
		Weight:   spec.Weight,
		Inches:   *spec.Inches,
		Touch:    touch,
		IPS:      ips,
		Pixels:   pixels,
	}
	switch kind {
	case StorageHDD:
		row.HDD = size
	case StorageSSD:
		row.SSD = size
	}
	return row, nil
}

// CheckSelections fails with ErrMissingSelection when Ram or Inches is unset.
func CheckSelections(spec domain.SpecificationRecord) error {
	var missing []error
	if spec.Ram == nil {
		missing = append(missing, errors.New("ram is not selected"))
	}
	if spec.Inches == nil {
		missing = append(missing, errors.New("screen size is not selected"))
	}
	if len(missing) == 0 {
		return nil
	}
	return domain.WrapError(domain.ErrMissingSelection, "encode", errors.Join(missing...))
}

func (e *Encoder) flag(field, value string) (int, error) {
	switch {
	case value == "Yes":
		return 1, nil
	case value == "No" || !e.strict:
		return 0, nil
	default:
		return 0, domain.WrapError(domain.ErrInvalidInput, "encode", fmt.Errorf("%s must be Yes or No, got %q", field, value))
	}
}

func (e *Encoder) validate(spec domain.SpecificationRecord) error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(e.catalog.HasCompany(spec.Company), "unknown company %q", spec.Company)
	check(e.catalog.HasTypeName(spec.TypeName), "unknown type %q", spec.TypeName)
	check(e.catalog.HasCPUBrand(spec.CPUBrand), "unknown cpu brand %q", spec.CPUBrand)
	check(e.catalog.HasGPUBrand(spec.GPUBrand), "unknown gpu brand %q", spec.GPUBrand)
	check(e.catalog.HasOpSys(spec.OpSys), "unknown operating system %q", spec.OpSys)
	check(e.catalog.HasRam(*spec.Ram), "unsupported ram size %d", *spec.Ram)
	check(e.catalog.HasInches(*spec.Inches), "unsupported screen size %.1f", *spec.Inches)
	check(spec.Weight >= e.catalog.MinWeight && spec.Weight <= e.catalog.MaxWeight,
		"weight %.2f outside [%.1f, %.1f]", spec.Weight, e.catalog.MinWeight, e.catalog.MaxWeight)

	if len(problems) == 0 {
		return nil
	}
	return domain.WrapError(domain.ErrInvalidInput, "encode", errors.Join(problems...))
}
