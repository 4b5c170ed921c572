package storage

import (
	"testing"
)

// mockSpec implements ValidatingSpec for envelope tests.
type mockSpec struct {
	Name string `json:"name"`

	validateErr error
}

func (s *mockSpec) Validate() error {
	return s.validateErr
}

func TestAsset_Validate(t *testing.T) {
	tests := map[string]struct {
		asset  Asset[*mockSpec]
		expErr bool
	}{
		"valid decimal key": {
			asset: Asset[*mockSpec]{Version: 1, Key: "42", Spec: &mockSpec{}},
		},
		"valid name key": {
			asset: Asset[*mockSpec]{Version: 1, Key: "alice_2", Spec: &mockSpec{}},
		},
		"missing version": {
			asset:  Asset[*mockSpec]{Key: "42", Spec: &mockSpec{}},
			expErr: true,
		},
		"missing key": {
			asset:  Asset[*mockSpec]{Version: 1, Spec: &mockSpec{}},
			expErr: true,
		},
		"uppercase key": {
			asset:  Asset[*mockSpec]{Version: 1, Key: "Alice", Spec: &mockSpec{}},
			expErr: true,
		},
		"key with spaces": {
			asset:  Asset[*mockSpec]{Version: 1, Key: "town square", Spec: &mockSpec{}},
			expErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.asset.Validate()
			if tt.expErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.expErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
