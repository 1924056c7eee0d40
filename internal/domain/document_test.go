package domain

import "testing"

func TestNewIdentityDocument(t *testing.T) {
	tests := []struct {
		name         string
		docName      string
		abbreviation string
		country      string
		length       int
		wantErr      bool
	}{
		{"valid", "National Identity Document", "DNI", "Peru", 8, false},
		{"empty name", "", "DNI", "Peru", 8, true},
		{"whitespace name", "   ", "DNI", "Peru", 8, true},
		{"empty abbreviation", "National Identity Document", "", "Peru", 8, true},
		{"empty country", "National Identity Document", "DNI", "  ", 8, true},
		{"zero length", "National Identity Document", "DNI", "Peru", 0, true},
		{"negative length", "National Identity Document", "DNI", "Peru", -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := NewIdentityDocument(1, tt.docName, tt.abbreviation, tt.country, tt.length, true, true)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !IsValidation(err) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if doc.Length != tt.length {
				t.Errorf("length = %d; want %d", doc.Length, tt.length)
			}
		})
	}
}

func TestNewIdentityDocument_TrimsFields(t *testing.T) {
	doc, err := NewIdentityDocument(1, "  Passport  ", " PAS ", " Peru ", 9, false, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "Passport" {
		t.Errorf("name = %q; want %q", doc.Name, "Passport")
	}
	if doc.Abbreviation != "PAS" {
		t.Errorf("abbreviation = %q; want %q", doc.Abbreviation, "PAS")
	}
	if doc.Country != "Peru" {
		t.Errorf("country = %q; want %q", doc.Country, "Peru")
	}
}

func TestIdentityDocument_ActivateDeactivate(t *testing.T) {
	doc, err := NewIdentityDocument(1, "Passport", "PAS", "Peru", 9, false, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc.Activate()
	if !doc.IsActive {
		t.Error("expected document to be active after Activate")
	}

	// Idempotent.
	doc.Activate()
	if !doc.IsActive {
		t.Error("expected document to stay active after second Activate")
	}

	doc.Deactivate()
	if doc.IsActive {
		t.Error("expected document to be inactive after Deactivate")
	}

	doc.Deactivate()
	if doc.IsActive {
		t.Error("expected document to stay inactive after second Deactivate")
	}
}
