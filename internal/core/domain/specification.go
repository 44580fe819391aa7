package domain

// SpecificationRecord is the user-supplied description of a laptop before
// encoding. Ram and Inches are pointers because the form has no default for
// them and an unselected value must stay distinguishable from zero.
type SpecificationRecord struct {
	Company  string   `json:"company"`
	TypeName string   `json:"type_name"`
	CPUBrand string   `json:"cpu_brand"`
	Ram      *int     `json:"ram"`
	Memory   string   `json:"memory"`
	GPUBrand string   `json:"gpu_brand"`
	OpSys    string   `json:"op_sys"`
	Weight   float64  `json:"weight"`
	Inches   *float64 `json:"inches"`
	Touch    string   `json:"touch"`
	IPS      string   `json:"ips"`
	Pixels   string   `json:"pixels"`
}

// HasSelections reports whether both button-group values are present.
func (s SpecificationRecord) HasSelections() bool {
	return s.Ram != nil && s.Inches != nil
}

func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }
