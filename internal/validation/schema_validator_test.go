package validation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
)

const validRecord = `{
	"description": "55 inch 4K QLED TV",
	"manufacturer": "Samsung",
	"model": "QN55Q80B",
	"serialNumber": "SAMS001TV2023",
	"type": "Television",
	"owner": "Marketing",
	"currentUser": "Alice"
}`

func TestSchemaValidator_InventorySeed(t *testing.T) {
	validator := NewSchemaValidator()

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{
			name: "valid records",
			data: "[" + validRecord + "]",
		},
		{
			name: "empty array",
			data: `[]`,
		},
		{
			name: "status is optional but typed",
			data: `[` + strings.Replace(validRecord, `"owner"`, `"status": "In use", "owner"`, 1) + `]`,
		},
		{
			name:      "missing required field",
			data:      `[` + strings.Replace(validRecord, `"owner": "Marketing",`, ``, 1) + `]`,
			wantError: true,
			errorMsg:  "required",
		},
		{
			name:      "blank field",
			data:      `[` + strings.Replace(validRecord, `"Samsung"`, `"   "`, 1) + `]`,
			wantError: true,
			errorMsg:  "/0/manufacturer",
		},
		{
			name:      "unknown field",
			data:      `[` + strings.Replace(validRecord, `"owner"`, `"color": "red", "owner"`, 1) + `]`,
			wantError: true,
			errorMsg:  "additionalProperties",
		},
		{
			name:      "not an array",
			data:      validRecord,
			wantError: true,
			errorMsg:  "type",
		},
		{
			name:      "invalid JSON",
			data:      `[{"model": }]`,
			wantError: true,
			errorMsg:  "parse JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), SchemaInventorySeed)

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()

	dataPath := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(dataPath, []byte("["+validRecord+"]"), 0644); err != nil {
		t.Fatalf("Failed to write data file: %v", err)
	}

	if err := validator.ValidateFile(dataPath, SchemaInventorySeed); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	if err := validator.ValidateFile(filepath.Join(t.TempDir(), "missing.json"), SchemaInventorySeed); err == nil {
		t.Error("Expected error for missing data file")
	}
}

func TestSchemaValidator_CustomFS(t *testing.T) {
	fsys := fstest.MapFS{
		"name.schema.json": {Data: []byte(`{
			"$schema": "http://json-schema.org/draft-07/schema#",
			"type": "object",
			"properties": {"name": {"type": "string"}},
			"required": ["name"]
		}`)},
	}
	validator := NewSchemaValidatorFS(fsys)

	if err := validator.ValidateBytes([]byte(`{"name": "x"}`), "name.schema.json"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := validator.ValidateBytes([]byte(`{}`), "name.schema.json"); err == nil {
		t.Error("Expected error for missing name")
	}
	// Second call hits the compiled-schema cache
	if err := validator.ValidateBytes([]byte(`{"name": "y"}`), "name.schema.json"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	err := validator.ValidateBytes([]byte(`{}`), "missing.schema.json")
	if err == nil || !strings.Contains(err.Error(), "failed to load schema") {
		t.Errorf("Expected load error, got %v", err)
	}
}
