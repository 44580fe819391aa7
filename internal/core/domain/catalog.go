package domain

// Catalog lists the choices offered by the form.
type Catalog struct {
	Companies  []string  `json:"companies"`
	TypeNames  []string  `json:"type_names"`
	CPUBrands  []string  `json:"cpu_brands"`
	Memories   []string  `json:"memories"`
	GPUBrands  []string  `json:"gpu_brands"`
	OpSystems  []string  `json:"op_systems"`
	YesNo      []string  `json:"yes_no"`
	Resolution []string  `json:"resolutions"`
	RamSizes   []int     `json:"ram_sizes"`
	Inches     []float64 `json:"inches"`

	MinWeight     float64 `json:"min_weight"`
	MaxWeight     float64 `json:"max_weight"`
	DefaultWeight float64 `json:"default_weight"`
}

func DefaultCatalog() Catalog {
	return Catalog{
		Companies:  []string{"HP", "Dell", "Lenovo", "Apple", "Asus", "Acer", "MSI", "Microsoft"},
		TypeNames:  []string{"Notebook", "Gaming", "Ultrabook", "Workstation"},
		CPUBrands:  []string{"Intel Core i3", "Intel Core i5", "Intel Core i7", "AMD Ryzen"},
		Memories:   []string{"128GB SSD", "256GB SSD", "512GB SSD", "1TB HDD", "1TB SSD"},
		GPUBrands:  []string{"Intel", "Nvidia", "AMD"},
		OpSystems:  []string{"Windows 10", "Windows 11", "Mac OS", "Linux"},
		YesNo:      []string{"Yes", "No"},
		Resolution: []string{"1920x1080", "1366x768", "1600x900", "3840x2160"},
		RamSizes:   []int{2, 4, 8, 16, 32, 64},
		Inches:     []float64{13.3, 14.0, 15.6, 17.3},

		MinWeight:     0.5,
		MaxWeight:     5.0,
		DefaultWeight: 1.5,
	}
}

func (c Catalog) HasRam(v int) bool {
	for _, r := range c.RamSizes {
		if r == v {
			return true
		}
	}
	return false
}

func (c Catalog) HasInches(v float64) bool {
	for _, in := range c.Inches {
		if in == v {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func (c Catalog) HasCompany(v string) bool  { return contains(c.Companies, v) }
func (c Catalog) HasTypeName(v string) bool { return contains(c.TypeNames, v) }
func (c Catalog) HasCPUBrand(v string) bool { return contains(c.CPUBrands, v) }
func (c Catalog) HasGPUBrand(v string) bool { return contains(c.GPUBrands, v) }
func (c Catalog) HasOpSys(v string) bool    { return contains(c.OpSystems, v) }
