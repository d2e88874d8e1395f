package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Bebric123/MedAnalyzer/model"
)

// Diseases fetches the disease history. The endpoint has shipped three
// envelopes over time: a bare array, {diseases: [...]}, and {data: [...]};
// all are accepted and an unknown shape yields an empty list.
func (c *Client) Diseases(ctx context.Context) (model.DiseaseHistory, error) {
	data, err := c.do(ctx, http.MethodGet, "/diseases/", nil, "")
	if err != nil {
		return nil, err
	}
	return normalizeDiseases(data), nil
}

func normalizeDiseases(data []byte) model.DiseaseHistory {
	var list model.DiseaseHistory
	if err := json.Unmarshal(data, &list); err == nil {
		return list
	}

	var wrapped struct {
		Diseases model.DiseaseHistory `json:"diseases"`
		Data     model.DiseaseHistory `json:"data"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped.Diseases != nil {
			return wrapped.Diseases
		}
		if wrapped.Data != nil {
			return wrapped.Data
		}
	}

	return model.DiseaseHistory{}
}

// DeactivateDisease flips a record to inactive. The backend replies 200
// with either {success, message} or {error}, so the body decides.
func (c *Client) DeactivateDisease(ctx context.Context, id string) (string, error) {
	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	if err := c.sendJSON(ctx, http.MethodPost, "/diseases/"+id+"/deactivate/", nil, &resp); err != nil {
		return "", err
	}
	if resp.Err != "" {
		return "", fmt.Errorf("deactivate disease %s: %s", id, resp.Err)
	}
	return resp.Message, nil
}
