package model

import "testing"

func sampleList() JournalList {
	return JournalList{
		{ID: "1", Date: "2024-04-28", WellBeingScore: 3},
		{ID: "2", Date: "2024-04-27", WellBeingScore: 5},
	}
}

func TestJournalPrepend(t *testing.T) {
	list := sampleList()
	entry := JournalEntry{ID: "3", Date: "2024-05-01", WellBeingScore: 4, Symptoms: []string{"Cough"}}

	got := list.Prepend(entry)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].ID != "3" {
		t.Fatalf("new entry should be first, got %s", got[0].ID)
	}
	if got[1].ID != "1" || got[2].ID != "2" {
		t.Fatal("existing entries reordered")
	}
}

func TestJournalReplace(t *testing.T) {
	list := sampleList()
	got := list.Replace(JournalEntry{ID: "2", Date: "2024-04-27", WellBeingScore: 1, Description: "updated"})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[1].Description != "updated" || got[1].WellBeingScore != 1 {
		t.Fatal("target entry not replaced")
	}
	if got[0].WellBeingScore != 3 {
		t.Fatal("unrelated entry modified")
	}
}

func TestJournalReplaceUnknownIDLeavesListUntouched(t *testing.T) {
	list := sampleList()
	got := list.Replace(JournalEntry{ID: "999"})
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatal("replace with unknown id should change nothing")
	}
}

func TestJournalRemove(t *testing.T) {
	list := sampleList()
	got := list.Remove("1")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("unexpected result: %+v", got)
	}

	// removing again is a no-op
	got = got.Remove("1")
	if len(got) != 1 {
		t.Fatal("second remove should be idempotent")
	}
}

func TestDiseasePartition(t *testing.T) {
	history := DiseaseHistory{
		{ID: "41", DiseaseName: "Hypertension", IsActive: true},
		{ID: "42", DiseaseName: "Acute bronchitis", IsActive: false},
		{ID: "43", DiseaseName: "Migraine", IsActive: true},
	}

	active := history.Active()
	if len(active) != 2 || active[0].ID != "41" || active[1].ID != "43" {
		t.Fatalf("unexpected active set: %+v", active)
	}

	inactive := history.Inactive()
	if len(inactive) != 1 || inactive[0].ID != "42" {
		t.Fatalf("unexpected inactive set: %+v", inactive)
	}
}
