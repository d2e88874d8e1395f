package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Bebric123/MedAnalyzer/model"
)

func TestLoginPersistsSessionAndBootstrapsCSRF(t *testing.T) {
	var csrfHit bool
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login/":
			var req struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Errorf("decode login: %v", err)
			}
			if req.Email != "a@b.c" || req.Password != "secret" {
				t.Errorf("login payload = %+v", req)
			}
			json.NewEncoder(w).Encode(map[string]any{
				"access":  "acc",
				"refresh": "ref",
				"user":    map[string]string{"email": "a@b.c", "name": "Alice"},
			})
		case "/auth/csrf/":
			csrfHit = true
			w.Write([]byte(`{}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	user, err := client.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Name != "Alice" {
		t.Fatalf("user = %+v", user)
	}
	if store.Token() != "acc" || store.RefreshToken() != "ref" {
		t.Fatal("tokens not persisted")
	}
	if !csrfHit {
		t.Fatal("csrf endpoint not bootstrapped")
	}
}

func TestLogoutClearsSessionEvenOnServerError(t *testing.T) {
	client, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	if err := store.Save(model.Tokens{Access: "a", Refresh: "r"}, model.User{}); err != nil {
		t.Fatal(err)
	}

	if err := client.Logout(context.Background()); err == nil {
		t.Fatal("server error should surface")
	}
	if store.Token() != "" {
		t.Fatal("local session should clear regardless")
	}
}

func TestProfile(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/profile/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`{"email": "a@b.c", "name": "Alice"}`))
	}))

	user, err := client.Profile(context.Background())
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if user.Email != "a@b.c" {
		t.Fatalf("user = %+v", user)
	}
}

func TestChangePasswordPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req["old_password"] != "old" || req["new_password"] != "new" {
			t.Errorf("payload = %v", req)
		}
		w.Write([]byte(`{}`))
	}))

	if err := client.ChangePassword(context.Background(), "old", "new"); err != nil {
		t.Fatalf("change password: %v", err)
	}
}

func TestRetryPostsToRetryPath(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/analysis/retry/f-1/" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{}`))
	}))

	if err := client.Retry(context.Background(), "f-1"); err != nil {
		t.Fatalf("retry: %v", err)
	}
}

func TestHistoryDecodesSessions(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analysis/history/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"session_id": "s-1", "status": "completed", "filename": "a.pdf", "file_id": 1},
			{"session_id": "s-2", "status": "failed", "filename": "b.dcm"}
		]`))
	}))

	sessions, err := client.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("sessions = %+v", sessions)
	}
	if sessions[0].FileID != "1" || sessions[0].Status != model.StatusCompleted {
		t.Fatalf("first session = %+v", sessions[0])
	}
	if sessions[1].Status != model.StatusFailed {
		t.Fatalf("second session = %+v", sessions[1])
	}
}
