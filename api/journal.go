package api

import (
	"context"
	"net/http"

	"github.com/Bebric123/MedAnalyzer/model"
)

// journalEnvelope tolerates the numeric ids the backend emits for journal
// records.
type journalEnvelope struct {
	ID             flexID   `json:"id"`
	Date           string   `json:"date"`
	WellBeingScore int      `json:"well_being_score"`
	Description    string   `json:"description"`
	Symptoms       []string `json:"symptoms"`
}

func (e journalEnvelope) entry() model.JournalEntry {
	return model.JournalEntry{
		ID:             string(e.ID),
		Date:           e.Date,
		WellBeingScore: e.WellBeingScore,
		Description:    e.Description,
		Symptoms:       e.Symptoms,
	}
}

// journalPayload is the outbound form: no id (the backend assigns it) and
// symptoms always an array, never null.
type journalPayload struct {
	Date           string   `json:"date"`
	WellBeingScore int      `json:"well_being_score"`
	Description    string   `json:"description"`
	Symptoms       []string `json:"symptoms"`
}

func journalBody(entry model.JournalEntry) journalPayload {
	symptoms := entry.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	return journalPayload{
		Date:           entry.Date,
		WellBeingScore: entry.WellBeingScore,
		Description:    entry.Description,
		Symptoms:       symptoms,
	}
}

// JournalEntries lists the wellbeing journal, newest first as the backend
// orders it.
func (c *Client) JournalEntries(ctx context.Context) (model.JournalList, error) {
	var envs []journalEnvelope
	if err := c.getJSON(ctx, "/journal/", &envs); err != nil {
		return nil, err
	}
	list := make(model.JournalList, 0, len(envs))
	for _, env := range envs {
		list = append(list, env.entry())
	}
	return list, nil
}

// CreateJournalEntry stores a new entry and returns it with its server id.
func (c *Client) CreateJournalEntry(ctx context.Context, entry model.JournalEntry) (model.JournalEntry, error) {
	var created journalEnvelope
	err := c.sendJSON(ctx, http.MethodPost, "/journal/create/", journalBody(entry), &created)
	return created.entry(), err
}

// UpdateJournalEntry replaces an entry by id and returns the stored form.
func (c *Client) UpdateJournalEntry(ctx context.Context, id string, entry model.JournalEntry) (model.JournalEntry, error) {
	var updated journalEnvelope
	err := c.sendJSON(ctx, http.MethodPut, "/journal/"+id+"/", journalBody(entry), &updated)
	return updated.entry(), err
}

// DeleteJournalEntry removes an entry by id.
func (c *Client) DeleteJournalEntry(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/journal/"+id+"/", nil, nil)
}
