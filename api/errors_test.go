package api

import "testing"

func TestParseErrorMessagePriority(t *testing.T) {
	// message wins over error, error wins over field errors
	e := parseError(400, []byte(`{"message": "general", "error": "other", "errors": {"file": ["too big"]}}`))
	if e.Message != "general" {
		t.Fatalf("Message = %q, want general", e.Message)
	}

	e = parseError(400, []byte(`{"error": "other", "errors": {"file": ["too big"]}}`))
	if e.Message != "other" {
		t.Fatalf("Message = %q, want other", e.Message)
	}

	e = parseError(400, []byte(`{"errors": {"file": ["too big"], "description": ["too long"]}}`))
	if e.Message != "too long; too big" {
		t.Fatalf("Message = %q", e.Message)
	}
	if e.FieldError("file") != "too big" {
		t.Fatalf("FieldError(file) = %q", e.FieldError("file"))
	}
}

func TestParseErrorKeepsFieldsAlongsideMessage(t *testing.T) {
	e := parseError(400, []byte(`{"message": "validation failed", "errors": {"email": ["taken"]}}`))
	if e.Message != "validation failed" {
		t.Fatalf("Message = %q", e.Message)
	}
	if e.FieldError("email") != "taken" {
		t.Fatal("field errors should survive when a message is present")
	}
}

func TestParseErrorKinds(t *testing.T) {
	cases := []struct {
		status int
		kind   Kind
	}{
		{400, KindValidation},
		{401, KindAuth},
		{403, KindForbidden},
		{404, KindNotFound},
		{500, KindServer},
		{503, KindServer},
	}
	for _, tc := range cases {
		e := parseError(tc.status, nil)
		if e.Kind != tc.kind {
			t.Errorf("status %d: kind = %v, want %v", tc.status, e.Kind, tc.kind)
		}
		if e.Message == "" {
			t.Errorf("status %d: empty default message", tc.status)
		}
	}
}

func TestParseErrorGarbageBody(t *testing.T) {
	e := parseError(500, []byte("<html>oops</html>"))
	if e.Message != "Server error, try again later" {
		t.Fatalf("Message = %q", e.Message)
	}
}

func TestAsError(t *testing.T) {
	orig := &Error{Kind: KindNotFound, Message: "missing"}
	if AsError(orig) != orig {
		t.Fatal("AsError should pass *Error through")
	}
	if AsError(nil) != nil {
		t.Fatal("AsError(nil) should be nil")
	}
}
