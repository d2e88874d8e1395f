package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
)

func TestNormalizeDiseasesEnvelopes(t *testing.T) {
	record := `{"id": "42", "disease_code": "J06.9", "disease_name": "Upper respiratory infection", "is_active": true}`
	cases := []string{
		`[` + record + `]`,
		`{"diseases": [` + record + `]}`,
		`{"data": [` + record + `]}`,
	}
	for _, body := range cases {
		list := normalizeDiseases([]byte(body))
		if len(list) != 1 || list[0].ID != "42" {
			t.Errorf("body %s: unexpected list %+v", body, list)
		}
	}
}

func TestNormalizeDiseasesUnknownShape(t *testing.T) {
	list := normalizeDiseases([]byte(`{"something": "else"}`))
	if len(list) != 0 {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestDeactivateDisease(t *testing.T) {
	// the list flips record 42 to inactive after the deactivate call
	var deactivated atomic.Bool

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/diseases/42/deactivate/":
			if r.Method != http.MethodPost {
				t.Errorf("method = %s", r.Method)
			}
			deactivated.Store(true)
			w.Write([]byte(`{"success": true, "message": "Disease marked as cured"}`))
		case "/diseases/":
			active := `{"id": "41", "disease_name": "Hypertension", "is_active": true}`
			target := `{"id": "42", "disease_name": "Bronchitis", "is_active": true}`
			if deactivated.Load() {
				target = `{"id": "42", "disease_name": "Bronchitis", "is_active": false}`
			}
			w.Write([]byte(`[` + active + `,` + target + `]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	ctx := context.Background()

	before, err := client.Diseases(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(before.Active()) != 2 {
		t.Fatalf("active before = %d", len(before.Active()))
	}

	message, err := client.DeactivateDisease(ctx, "42")
	if err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if message != "Disease marked as cured" {
		t.Fatalf("message = %q", message)
	}

	after, err := client.Diseases(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(after.Active()) != 1 || after.Active()[0].ID != "41" {
		t.Fatalf("active after = %+v", after.Active())
	}
	if len(after.Inactive()) != 1 || after.Inactive()[0].ID != "42" {
		t.Fatalf("inactive after = %+v", after.Inactive())
	}
}

func TestDeactivateDiseaseErrorBody(t *testing.T) {
	// failures arrive as 200 with an error field
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error": "Disease not found"}`))
	}))

	if _, err := client.DeactivateDisease(context.Background(), "99"); err == nil {
		t.Fatal("expected an error from the error body")
	}
}
