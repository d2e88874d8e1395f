package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/Bebric123/MedAnalyzer/model"
)

func TestJournalEntriesDecodeNumericIDs(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/journal/" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte(`[
			{"id": 2, "date": "2024-05-02", "well_being_score": 4, "symptoms": ["Cough"]},
			{"id": 1, "date": "2024-05-01", "well_being_score": 3, "symptoms": null}
		]`))
	}))

	entries, err := client.JournalEntries(context.Background())
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %+v", entries)
	}
	if entries[0].ID != "2" || entries[1].ID != "1" {
		t.Fatalf("ids = %q, %q", entries[0].ID, entries[1].ID)
	}
	if entries[0].Symptoms[0] != "Cough" {
		t.Fatalf("symptoms = %v", entries[0].Symptoms)
	}
}

func TestCreateJournalEntrySendsSymptomsArray(t *testing.T) {
	var sent map[string]json.RawMessage
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &sent); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"id": 7, "date": "2024-05-01", "well_being_score": 4, "symptoms": []}`))
	}))

	// no symptoms set; the wire form must still carry an array, not null
	created, err := client.CreateJournalEntry(context.Background(), model.JournalEntry{
		Date:           "2024-05-01",
		WellBeingScore: 4,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if got := string(sent["symptoms"]); got != "[]" {
		t.Fatalf("symptoms on the wire = %s, want []", got)
	}
	if _, ok := sent["id"]; ok {
		t.Fatal("create payload should not carry an id")
	}
	if created.ID != "7" {
		t.Fatalf("created id = %q, want 7", created.ID)
	}
}

func TestUpdateJournalEntryDecodesNumericID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/journal/7/" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id": 7, "date": "2024-05-01", "well_being_score": 2, "symptoms": ["Fatigue"]}`))
	}))

	updated, err := client.UpdateJournalEntry(context.Background(), "7", model.JournalEntry{
		ID:             "7",
		Date:           "2024-05-01",
		WellBeingScore: 2,
		Symptoms:       []string{"Fatigue"},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != "7" || updated.WellBeingScore != 2 {
		t.Fatalf("updated = %+v", updated)
	}
}
