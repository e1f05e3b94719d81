package classifier

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, m map[string]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal artifact: %v", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		artifact map[string]interface{}
		wantErr  bool
	}{
		{
			name: "Valid",
			artifact: map[string]interface{}{
				"model_version": "v1",
				"feature_names": []string{"a", "b"},
				"classes":       []int{0, 1},
				"intercept":     0.1,
				"coefficients":  []float64{1.0, -2.0},
			},
		},
		{
			name: "Coefficient Count Mismatch",
			artifact: map[string]interface{}{
				"feature_names": []string{"a", "b"},
				"coefficients":  []float64{1.0},
			},
			wantErr: true,
		},
		{
			name: "No Features",
			artifact: map[string]interface{}{
				"coefficients": []float64{},
			},
			wantErr: true,
		},
		{
			name: "Zero Scale",
			artifact: map[string]interface{}{
				"feature_names": []string{"a"},
				"coefficients":  []float64{1.0},
				"means":         []float64{0.0},
				"scales":        []float64{0.0},
			},
			wantErr: true,
		},
		{
			name: "Non Binary Classes",
			artifact: map[string]interface{}{
				"feature_names": []string{"a"},
				"coefficients":  []float64{1.0},
				"classes":       []int{0, 1, 2},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeArtifact(t, tt.artifact))
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load() on missing file succeeded")
	}
}

func TestProba(t *testing.T) {
	m := &Model{
		FeatureNames: []string{"a", "b"},
		Intercept:    0,
		Coefficients: []float64{1, 1},
	}

	tests := []struct {
		name    string
		row     []float64
		wantWin float64
	}{
		{"Zero Row", []float64{0, 0}, 0.5},
		{"Strong Positive", []float64{50, 0}, 1.0},
		{"Strong Negative", []float64{-50, 0}, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probs, err := m.Proba(tt.row)
			if err != nil {
				t.Fatalf("Proba() error: %v", err)
			}
			if math.Abs(probs[1]-tt.wantWin) > 1e-9 {
				t.Errorf("p_win = %v, want %v", probs[1], tt.wantWin)
			}
			if math.Abs(probs[0]+probs[1]-1.0) > 1e-9 {
				t.Errorf("probabilities do not sum to 1: %v", probs)
			}
		})
	}
}

func TestProbaStandardized(t *testing.T) {
	m := &Model{
		FeatureNames: []string{"a"},
		Coefficients: []float64{2},
		Means:        []float64{10},
		Scales:       []float64{5},
	}
	// (20-10)/5 = 2, z = 4
	probs, err := m.Proba([]float64{20})
	if err != nil {
		t.Fatalf("Proba() error: %v", err)
	}
	want := 1.0 / (1.0 + math.Exp(-4.0))
	if math.Abs(probs[1]-want) > 1e-9 {
		t.Errorf("p_win = %v, want %v", probs[1], want)
	}
}

func TestProbaNaNPropagates(t *testing.T) {
	m := &Model{
		FeatureNames: []string{"a", "b"},
		Coefficients: []float64{1, 1},
	}
	probs, err := m.Proba([]float64{math.NaN(), 1})
	if err != nil {
		t.Fatalf("Proba() error: %v", err)
	}
	if !math.IsNaN(probs[0]) || !math.IsNaN(probs[1]) {
		t.Errorf("NaN input produced finite probabilities: %v", probs)
	}
}

func TestPredict(t *testing.T) {
	m := &Model{
		FeatureNames: []string{"a"},
		Coefficients: []float64{1},
	}
	tests := []struct {
		row  []float64
		want int
	}{
		{[]float64{5}, 1},
		{[]float64{-5}, 0},
		{[]float64{0}, 1}, // p=0.5 maps to the win class
	}
	for _, tt := range tests {
		got, err := m.Predict(tt.row)
		if err != nil {
			t.Fatalf("Predict(%v) error: %v", tt.row, err)
		}
		if got != tt.want {
			t.Errorf("Predict(%v) = %d, want %d", tt.row, got, tt.want)
		}
	}
}

func TestModelInputError(t *testing.T) {
	m := &Model{
		FeatureNames: []string{"a", "b"},
		Coefficients: []float64{1, 1},
	}
	_, err := m.Proba([]float64{1})
	var inputErr *ModelInputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("Proba() error = %v, want ModelInputError", err)
	}
	if inputErr.Want != 2 || inputErr.Got != 1 {
		t.Errorf("ModelInputError = %+v", inputErr)
	}
}

func TestValidateSchema(t *testing.T) {
	m := &Model{
		FeatureNames: []string{"a", "b", "c"},
		Coefficients: []float64{1, 1, 1},
	}
	if err := m.ValidateSchema([]string{"c", "a", "b"}); err != nil {
		t.Errorf("ValidateSchema() on matching set error: %v", err)
	}
	if err := m.ValidateSchema([]string{"a", "b"}); err == nil {
		t.Error("ValidateSchema() missed a missing feature")
	}
	if err := m.ValidateSchema([]string{"a", "b", "c", "d"}); err == nil {
		t.Error("ValidateSchema() missed an extra feature")
	}
}

func TestValidateConventions(t *testing.T) {
	homeCode := 1
	m := &Model{
		FeatureNames:   []string{"a"},
		Coefficients:   []float64{1},
		VenueHomeCode:  &homeCode,
		HomePrefixRule: "venue",
	}
	if err := m.ValidateConventions(1, "venue"); err != nil {
		t.Errorf("ValidateConventions() error on match: %v", err)
	}
	if err := m.ValidateConventions(0, "venue"); err == nil {
		t.Error("ValidateConventions() missed a venue code mismatch")
	}
	if err := m.ValidateConventions(1, "fixed"); err == nil {
		t.Error("ValidateConventions() missed a prefix rule mismatch")
	}

	// Artifacts without recorded conventions skip the checks
	legacy := &Model{FeatureNames: []string{"a"}, Coefficients: []float64{1}}
	if err := legacy.ValidateConventions(1, "venue"); err != nil {
		t.Errorf("ValidateConventions() on legacy artifact error: %v", err)
	}
}
