package link

import "testing"

func TestValidate_EmptyInput(t *testing.T) {
	for _, kind := range []Kind{
		KindInternal, KindExternal, KindAnchor, KindScroll, KindEmail,
		KindPhone, KindSMS, KindDownload, KindModal, KindSocial, KindScript,
	} {
		if r := Validate("", kind); r.Valid {
			t.Errorf("empty input must be invalid for kind %s", kind)
		} else if r.Message != "value is required" {
			t.Errorf("unexpected message for kind %s: %q", kind, r.Message)
		}
	}
	if r := Validate("", KindNone); !r.Valid {
		t.Error("none must be valid on empty input")
	}
	if r := Validate("anything at all", KindNone); !r.Valid {
		t.Error("none must be valid regardless of input")
	}
}

func TestValidate_External(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"https://example.com", true},
		{"http://example.com/path?q=1", true},
		{"example.com", false},
		{"ftp://x", false},
		{"//example.com", false},
		{"https://", true}, // parses as absolute, format constraints end here
		{"not a url", false},
	}
	for _, tc := range tests {
		if got := Validate(tc.input, KindExternal).Valid; got != tc.valid {
			t.Errorf("Validate(%q, external) = %v, want %v", tc.input, got, tc.valid)
		}
	}
}

func TestValidate_Email(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"a@b.co", true},
		{"first.last@sub.example.com", true},
		{"a@b", false},
		{"a b@c.com", false},
		{"@example.com", false},
		{"a@.", false},
	}
	for _, tc := range tests {
		if got := Validate(tc.input, KindEmail).Valid; got != tc.valid {
			t.Errorf("Validate(%q, email) = %v, want %v", tc.input, got, tc.valid)
		}
	}
}

func TestValidate_PhoneAndSMS(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"+1 (555) 123-4567", true},
		{"5551234567", true},
		{"call me", false},
		{"+1;555", false},
	}
	for _, tc := range tests {
		for _, kind := range []Kind{KindPhone, KindSMS} {
			if got := Validate(tc.input, kind).Valid; got != tc.valid {
				t.Errorf("Validate(%q, %s) = %v, want %v", tc.input, kind, got, tc.valid)
			}
		}
	}
}

func TestValidate_Anchor(t *testing.T) {
	if !Validate("#pricing", KindAnchor).Valid {
		t.Error("anchor starting with # must be valid")
	}
	if Validate("pricing", KindAnchor).Valid {
		t.Error("anchor without # must be invalid")
	}
}

func TestValidate_FreeTextKinds(t *testing.T) {
	for _, kind := range []Kind{KindInternal, KindDownload, KindModal, KindSocial, KindScript} {
		if !Validate("whatever input", kind).Valid {
			t.Errorf("kind %s imposes no format constraint, input must be valid", kind)
		}
	}
}
