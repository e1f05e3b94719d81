// Package classifier loads and evaluates the pre-trained match-outcome
// model. The artifact is a JSON export of a binary logistic regression:
// an ordered feature name list, per-feature coefficients, an intercept,
// and optional standardization parameters. The feature name list is the
// single source of truth for the assembler's output order.
package classifier

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Model is the trained classifier artifact.
type Model struct {
	Version      string    `json:"model_version"`
	FeatureNames []string  `json:"feature_names"`
	Classes      []int     `json:"classes"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`

	// Optional standardization applied before the linear term.
	Means  []float64 `json:"means,omitempty"`
	Scales []float64 `json:"scales,omitempty"`

	// Training-time encoding conventions, used for fail-fast validation
	// against the assembler's constants at startup.
	VenueHomeCode  *int   `json:"venue_home_code,omitempty"`
	HomePrefixRule string `json:"home_prefix_rule,omitempty"`
}

// ModelInputError reports a row the model rejects before evaluation.
type ModelInputError struct {
	Want int
	Got  int
}

func (e *ModelInputError) Error() string {
	return fmt.Sprintf("model input: expected %d features, got %d", e.Want, e.Got)
}

// Load reads and validates a model artifact from disk.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if len(m.FeatureNames) == 0 {
		return nil, fmt.Errorf("model artifact %s declares no features", path)
	}
	if len(m.Coefficients) != len(m.FeatureNames) {
		return nil, fmt.Errorf("model artifact %s: %d coefficients for %d features",
			path, len(m.Coefficients), len(m.FeatureNames))
	}
	if len(m.Means) > 0 && len(m.Means) != len(m.FeatureNames) {
		return nil, fmt.Errorf("model artifact %s: %d means for %d features",
			path, len(m.Means), len(m.FeatureNames))
	}
	if len(m.Scales) > 0 && len(m.Scales) != len(m.FeatureNames) {
		return nil, fmt.Errorf("model artifact %s: %d scales for %d features",
			path, len(m.Scales), len(m.FeatureNames))
	}
	for i, s := range m.Scales {
		if s == 0 {
			return nil, fmt.Errorf("model artifact %s: zero scale for feature %s",
				path, m.FeatureNames[i])
		}
	}
	if len(m.Classes) != 0 && len(m.Classes) != 2 {
		return nil, fmt.Errorf("model artifact %s: expected binary classes, got %v", path, m.Classes)
	}
	return &m, nil
}

// Proba evaluates the classifier on one row in the model's declared feature
// order and returns [p_loss, p_win]. NaN inputs yield NaN probabilities;
// they are not patched here.
func (m *Model) Proba(row []float64) ([2]float64, error) {
	if len(row) != len(m.Coefficients) {
		return [2]float64{}, &ModelInputError{Want: len(m.Coefficients), Got: len(row)}
	}
	z := m.Intercept
	for i, x := range row {
		if len(m.Means) > 0 {
			x = (x - m.Means[i]) / m.Scales[i]
		}
		z += m.Coefficients[i] * x
	}
	pWin := sigmoid(z)
	return [2]float64{1 - pWin, pWin}, nil
}

// Predict returns the predicted class for one row: 1 for win, 0 for loss.
func (m *Model) Predict(row []float64) (int, error) {
	probs, err := m.Proba(row)
	if err != nil {
		return 0, err
	}
	if probs[1] >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

// ValidateSchema checks that the assembler's produced feature name set
// exactly matches the model's declared schema. Order is taken from the
// model, so only set membership is checked here.
func (m *Model) ValidateSchema(produced []string) error {
	declared := make(map[string]bool, len(m.FeatureNames))
	for _, name := range m.FeatureNames {
		declared[name] = true
	}
	have := make(map[string]bool, len(produced))
	var extra []string
	for _, name := range produced {
		have[name] = true
		if !declared[name] {
			extra = append(extra, name)
		}
	}
	var missing []string
	for _, name := range m.FeatureNames {
		if !have[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		return fmt.Errorf("model schema validation: missing=%v extra=%v", missing, extra)
	}
	return nil
}

// ValidateConventions checks the artifact's recorded encoding conventions
// against the values compiled into the assembler. Artifacts that predate
// these fields skip the corresponding check.
func (m *Model) ValidateConventions(venueHomeCode int, homePrefixRule string) error {
	if m.VenueHomeCode != nil && *m.VenueHomeCode != venueHomeCode {
		return fmt.Errorf("model trained with venue_home_code=%d, assembler uses %d",
			*m.VenueHomeCode, venueHomeCode)
	}
	if m.HomePrefixRule != "" && m.HomePrefixRule != homePrefixRule {
		return fmt.Errorf("model trained with home_prefix_rule=%q, assembler uses %q",
			m.HomePrefixRule, homePrefixRule)
	}
	return nil
}

func sigmoid(z float64) float64 {
	if z > 20 {
		return 1.0
	}
	if z < -20 {
		return 0.0
	}
	return 1.0 / (1.0 + math.Exp(-z))
}
