// Package artifact loads an exported regression model and evaluates it in
// process.
//
// The document is YAML (or JSON) and carries its own feature contract:
//
//	name: laptop-price
//	version: "2024.06"
//	target: exp
//	unknown_category: ignore
//	features:
//	  - {name: Company, kind: categorical, levels: [HP, Dell]}
//	  - {name: Ram, kind: numeric}
//	regressor:
//	  type: linear
//	  intercept: 10.1
//	  coefficients: {"Company=Dell": 0.04, Ram: 0.02}
//
// Categorical columns are one-hot encoded as "<Column>=<Level>"; numeric
// columns keep their own name.
package artifact

const (
	RegressorLinear       = "linear"
	RegressorTreeEnsemble = "tree_ensemble"

	TargetIdentity = "identity"
	TargetExp      = "exp"

	UnknownIgnore = "ignore"
	UnknownError  = "error"
)

type Document struct {
	Name            string            `yaml:"name"`
	Version         string            `yaml:"version"`
	Target          string            `yaml:"target"`
	UnknownCategory string            `yaml:"unknown_category"`
	Features        []FeatureDocument `yaml:"features"`
	Regressor       RegressorDocument `yaml:"regressor"`
}

type FeatureDocument struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`
	Levels []string `yaml:"levels,omitempty"`
}

type RegressorDocument struct {
	Type string `yaml:"type"`

	// linear
	Intercept    float64            `yaml:"intercept,omitempty"`
	Coefficients map[string]float64 `yaml:"coefficients,omitempty"`

	// tree_ensemble
	BaseScore    float64        `yaml:"base_score,omitempty"`
	LearningRate float64        `yaml:"learning_rate,omitempty"`
	Trees        []TreeDocument `yaml:"trees,omitempty"`
}

type TreeDocument struct {
	Nodes []NodeDocument `yaml:"nodes"`
}

// NodeDocument is a split when Feature is set, a leaf otherwise. Rows with
// value <= Threshold go left.
type NodeDocument struct {
	Feature   string  `yaml:"feature,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`
	Left      int     `yaml:"left,omitempty"`
	Right     int     `yaml:"right,omitempty"`
	Value     float64 `yaml:"value,omitempty"`
}

func oneHotName(column, level string) string {
	return column + "=" + level
}
