package artifact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

const backendName = "artifact"

type feature struct {
	name   string
	kind   domain.FeatureKind
	index  int            // numeric column index
	levels map[string]int // categorical level -> one-hot column index
}

type node struct {
	column    int // -1 for leaves
	threshold float64
	left      int
	right     int
	value     float64
}

// Model is immutable after Load and safe for concurrent use.
type Model struct {
	info     domain.ModelInfo
	schema   domain.FeatureSchema
	features []feature
	width    int
	target   string
	strict   bool

	// linear
	intercept    float64
	coefficients []float64

	// tree_ensemble
	baseScore    float64
	learningRate float64
	trees        [][]node
}

// Load decodes and validates an artifact document.
func Load(r io.Reader) (*Model, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return New(doc)
}

func New(doc Document) (*Model, error) {
	m := &Model{
		info: domain.ModelInfo{
			Name:    strings.TrimSpace(doc.Name),
			Version: strings.TrimSpace(doc.Version),
			Backend: backendName,
		},
	}
	if m.info.Name == "" {
		m.info.Name = "laptop-price"
	}

	switch doc.Target {
	case "", TargetIdentity:
		m.target = TargetIdentity
	case TargetExp:
		m.target = TargetExp
	default:
		return nil, fmt.Errorf("artifact: unsupported target transform %q", doc.Target)
	}

	switch doc.UnknownCategory {
	case "", UnknownIgnore:
	case UnknownError:
		m.strict = true
	default:
		return nil, fmt.Errorf("artifact: unsupported unknown_category %q", doc.UnknownCategory)
	}

	columns, err := m.buildFeatures(doc.Features)
	if err != nil {
		return nil, err
	}

	switch doc.Regressor.Type {
	case RegressorLinear:
		err = m.buildLinear(doc.Regressor, columns)
	case RegressorTreeEnsemble:
		err = m.buildTrees(doc.Regressor, columns)
	default:
		err = fmt.Errorf("artifact: unsupported regressor type %q", doc.Regressor.Type)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Model) buildFeatures(docs []FeatureDocument) (map[string]int, error) {
	if len(docs) == 0 {
		return nil, errors.New("artifact: no features declared")
	}

	columns := make(map[string]int)
	seen := make(map[string]bool, len(docs))
	for _, fd := range docs {
		name := strings.TrimSpace(fd.Name)
		if name == "" {
			return nil, errors.New("artifact: feature without name")
		}
		if seen[name] {
			return nil, fmt.Errorf("artifact: duplicate feature %q", name)
		}
		seen[name] = true

		f := feature{name: name, kind: domain.FeatureKind(fd.Kind), index: -1}
		switch f.kind {
		case domain.FeatureNumeric:
			f.index = m.width
			columns[name] = m.width
			m.width++
		case domain.FeatureCategorical:
			if len(fd.Levels) == 0 {
				return nil, fmt.Errorf("artifact: categorical feature %q has no levels", name)
			}
			f.levels = make(map[string]int, len(fd.Levels))
			for _, level := range fd.Levels {
				if _, dup := f.levels[level]; dup {
					return nil, fmt.Errorf("artifact: feature %q repeats level %q", name, level)
				}
				f.levels[level] = m.width
				columns[oneHotName(name, level)] = m.width
				m.width++
			}
		default:
			return nil, fmt.Errorf("artifact: feature %q has unsupported kind %q", name, fd.Kind)
		}

		m.features = append(m.features, f)
		m.schema = append(m.schema, domain.FeatureSpec{Name: name, Kind: f.kind})
	}
	return columns, nil
}

func (m *Model) buildLinear(doc RegressorDocument, columns map[string]int) error {
	m.intercept = doc.Intercept
	m.coefficients = make([]float64, m.width)
	for name, coef := range doc.Coefficients {
		idx, ok := columns[name]
		if !ok {
			return fmt.Errorf("artifact: coefficient for unknown column %q", name)
		}
		m.coefficients[idx] = coef
	}
	return nil
}

func (m *Model) buildTrees(doc RegressorDocument, columns map[string]int) error {
	if len(doc.Trees) == 0 {
		return errors.New("artifact: tree ensemble without trees")
	}
	m.baseScore = doc.BaseScore
	m.learningRate = doc.LearningRate
	if m.learningRate == 0 {
		m.learningRate = 1
	}

	m.trees = make([][]node, 0, len(doc.Trees))
	for ti, td := range doc.Trees {
		if len(td.Nodes) == 0 {
			return fmt.Errorf("artifact: tree %d has no nodes", ti)
		}
		nodes := make([]node, len(td.Nodes))
		for ni, nd := range td.Nodes {
			if nd.Feature == "" {
				nodes[ni] = node{column: -1, value: nd.Value}
				continue
			}
			idx, ok := columns[nd.Feature]
			if !ok {
				return fmt.Errorf("artifact: tree %d node %d splits on unknown column %q", ti, ni, nd.Feature)
			}
			// Children must point forward so evaluation always terminates.
			if nd.Left <= ni || nd.Right <= ni || nd.Left >= len(td.Nodes) || nd.Right >= len(td.Nodes) {
				return fmt.Errorf("artifact: tree %d node %d has invalid children %d/%d", ti, ni, nd.Left, nd.Right)
			}
			nodes[ni] = node{column: idx, threshold: nd.Threshold, left: nd.Left, right: nd.Right}
		}
		m.trees = append(m.trees, nodes)
	}
	return nil
}

func (m *Model) Schema() domain.FeatureSchema { return m.schema }

func (m *Model) Info() domain.ModelInfo { return m.info }

func (m *Model) Predict(_ context.Context, row domain.FeatureRow) (float64, error) {
	x, err := m.vector(row)
	if err != nil {
		return 0, err
	}

	var raw float64
	if m.trees != nil {
		raw = m.baseScore
		for _, tree := range m.trees {
			raw += m.learningRate * evalTree(tree, x)
		}
	} else {
		raw = m.intercept
		for i, coef := range m.coefficients {
			raw += coef * x[i]
		}
	}

	if m.target == TargetExp {
		raw = math.Exp(raw)
	}
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 0, domain.WrapError(domain.ErrPrediction, "artifact predict", fmt.Errorf("non-finite estimate %v", raw))
	}
	return raw, nil
}

func (m *Model) vector(row domain.FeatureRow) ([]float64, error) {
	values := row.Values()
	if len(values) != len(m.features) {
		return nil, domain.WrapError(domain.ErrSchemaMismatch, "artifact predict",
			fmt.Errorf("row has %d columns, artifact expects %d", len(values), len(m.features)))
	}

	x := make([]float64, m.width)
	for i, f := range m.features {
		v := values[i]
		if v.Name != f.name {
			return nil, domain.WrapError(domain.ErrSchemaMismatch, "artifact predict",
				fmt.Errorf("column %d is %q, artifact expects %q", i, v.Name, f.name))
		}
		if v.Kind != f.kind {
			return nil, domain.WrapError(domain.ErrSchemaMismatch, "artifact predict",
				fmt.Errorf("column %q is %s, artifact expects %s", f.name, v.Kind, f.kind))
		}
		if f.kind == domain.FeatureNumeric {
			x[f.index] = v.Number
			continue
		}
		idx, ok := f.levels[v.Text]
		if !ok {
			if m.strict {
				return nil, domain.WrapError(domain.ErrSchemaMismatch, "artifact predict",
					fmt.Errorf("unknown %s level %q", f.name, v.Text))
			}
			continue
		}
		x[idx] = 1
	}
	return x, nil
}

func evalTree(nodes []node, x []float64) float64 {
	i := 0
	for {
		n := nodes[i]
		if n.column < 0 {
			return n.value
		}
		if x[n.column] <= n.threshold {
			i = n.left
		} else {
			i = n.right
		}
	}
}
