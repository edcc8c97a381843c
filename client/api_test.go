package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scamdex/scamdex-api/client"
	"github.com/scamdex/scamdex-api/models"
)

func TestClientListScams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scams", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "UPIFraud,Phishing", q.Get("tags"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.Equal(t, "50", q.Get("fraudScoreMin"))
		assert.Empty(t, q.Get("fraudScoreMax"))

		json.NewEncoder(w).Encode(models.ScamListResponse{
			Success:    true,
			Data:       []models.ScamReport{{Title: "Fake UPI Link Phishing Scam"}},
			Pagination: models.Pagination{Page: 2, Limit: 10, Total: 11, Pages: 2},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	reports, pagination, err := c.ListScams(context.Background(), client.ListOptions{
		Tags:     []string{"UPIFraud", "Phishing"},
		ScoreMin: intPtr(50),
		Page:     2,
		Limit:    10,
	})

	assert.NoError(t, err)
	if assert.Len(t, reports, 1) {
		assert.Equal(t, "Fake UPI Link Phishing Scam", reports[0].Title)
	}
	assert.Equal(t, int64(11), pagination.Total)
	assert.Equal(t, int64(2), pagination.Pages)
}

func TestClientSearchScams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/scams/search", r.URL.Path)
		assert.Equal(t, "ponzi", r.URL.Query().Get("q"))

		json.NewEncoder(w).Encode(models.SearchResponse{
			Success:    true,
			Data:       []models.ScamReport{{Title: "Saradha Group Ponzi Scam (2013)"}},
			SearchInfo: models.SearchInfo{Query: "ponzi", TotalResults: 3, ReturnedResults: 1},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	reports, info, err := c.SearchScams(context.Background(), "ponzi", 0)

	assert.NoError(t, err)
	assert.Len(t, reports, 1)
	assert.Equal(t, int64(3), info.TotalResults)
	assert.Equal(t, 1, info.ReturnedResults)
}

func TestClientCreateScam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/scams", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var report models.ScamReport
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&report))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.ScamResponse{Success: true, Data: report})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	created, err := c.CreateScam(context.Background(), models.ScamReport{Title: "Fake UPI Link Phishing Scam"})

	assert.NoError(t, err)
	assert.Equal(t, "Fake UPI Link Phishing Scam", created.Title)
}

func TestClientErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "Scam not found"})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.GetScam(context.Background(), "608cafe595eb9dc05379b7f4")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "Scam not found")
}

func TestClientValidationErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ValidationErrorResponse{
			Success: false,
			Errors:  []models.FieldError{{Field: "title", Message: "Title must be between 5 and 200 characters"}},
		})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := c.CreateScam(context.Background(), models.ScamReport{Title: "abc"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "between 5 and 200")
}

func TestClientDeleteScam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		json.NewEncoder(w).Encode(models.MessageResponse{Success: true, Message: "Scam report deleted successfully"})
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	assert.NoError(t, c.DeleteScam(context.Background(), "608cafe595eb9dc05379b7f4"))
}
