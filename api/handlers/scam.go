package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scamdex/scamdex-api/api"
	"github.com/scamdex/scamdex-api/config"
	"github.com/scamdex/scamdex-api/databases"
	"github.com/scamdex/scamdex-api/models"
)

// Scam exported for testing purposes
type Scam struct {
	DB databases.ScamReportDatabase
}

// ScamHandler returns a filtered, sorted page of scam reports plus the total
// match count. The page fetch and the count are two independent reads, so the
// total can be stale relative to the page under concurrent writes; that
// window is accepted.
func (s Scam) ScamHandler(w http.ResponseWriter, r *http.Request) {
	query, verrs := ParseScamQuery(r)
	if verrs != nil {
		respondValidation(w, verrs)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := query.Filter()
	data, count, findErr, countErr := s.findAndCount(ctx, filter, query.FindOptions())
	if findErr != nil {
		config.ErrorStatus("failed to get scam reports", http.StatusInternalServerError, w, findErr)
		return
	}
	if countErr != nil {
		config.ErrorStatus("failed to count scam reports", http.StatusInternalServerError, w, countErr)
		return
	}

	respondJSON(w, http.StatusOK, models.ScamListResponse{
		Success: true,
		Data:    data,
		Pagination: models.Pagination{
			Page:  query.Page,
			Limit: query.Limit,
			Total: count,
			Pages: pages(count, query.Limit),
		},
	})
}

// findAndCount issues the page fetch and the match count as parallel reads
// over the same filter. The two are independent, so the count can be stale
// relative to the page under concurrent writes. A nil page decodes to an
// empty slice so responses always carry an array.
func (s Scam) findAndCount(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.ScamReport, int64, error, error) {
	type findResult struct {
		data []models.ScamReport
		err  error
	}
	type countResult struct {
		count int64
		err   error
	}

	findCh := make(chan findResult, 1)
	countCh := make(chan countResult, 1)

	go func() {
		data, err := s.DB.Find(ctx, filter, opts)
		findCh <- findResult{data: data, err: err}
	}()
	go func() {
		count, err := s.DB.CountDocuments(ctx, filter)
		countCh <- countResult{count: count, err: err}
	}()

	fr := <-findCh
	cr := <-countCh

	data := fr.data
	if data == nil {
		data = []models.ScamReport{}
	}
	return data, cr.count, fr.err, cr.err
}

// TrendingScamsHandler returns the top reports by fraud score, newest first
// on ties
func (s Scam) TrendingScamsHandler(w http.ResponseWriter, r *http.Request) {
	limit := 5
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 20 {
			respondValidation(w, []models.FieldError{{Field: "limit", Message: "limit must be an integer between 1 and 20"}})
			return
		}
		limit = n
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "fraudScore", Value: -1}, {Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	data, err := s.DB.Find(ctx, bson.M{}, opts)
	if err != nil {
		config.ErrorStatus("failed to get trending scam reports", http.StatusInternalServerError, w, err)
		return
	}
	if data == nil {
		data = []models.ScamReport{}
	}

	respondJSON(w, http.StatusOK, models.ScamsResponse{Success: true, Data: data})
}

// ScamTagsHandler returns the distinct tags currently in use, sorted
func (s Scam) ScamTagsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	tags, err := s.DB.DistinctTags(ctx)
	if err != nil {
		config.ErrorStatus("failed to get tags", http.StatusInternalServerError, w, err)
		return
	}
	if tags == nil {
		tags = []string{}
	}

	respondJSON(w, http.StatusOK, models.TagListResponse{Success: true, Data: tags})
}

// ScamStatsHandler returns collection-wide aggregate statistics
func (s Scam) ScamStatsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	stats, err := s.DB.Stats(ctx)
	if err != nil {
		config.ErrorStatus("failed to get stats", http.StatusInternalServerError, w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.StatsResponse{Success: true, Data: *stats})
}

// ScamSearchHandler runs a dedicated text search, ordered by the store's
// relevance score rather than any fixed field
func (s Scam) ScamSearchHandler(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		respondValidation(w, []models.FieldError{{Field: "q", Message: "Search query is required"}})
		return
	}

	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			respondValidation(w, []models.FieldError{{Field: "limit", Message: "limit must be an integer between 1 and 50"}})
			return
		}
		limit = n
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := bson.M{"$text": bson.M{"$search": q}}
	opts := options.Find().
		SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetSort(bson.M{"score": bson.M{"$meta": "textScore"}}).
		SetLimit(int64(limit))

	data, count, findErr, countErr := s.findAndCount(ctx, filter, opts)
	if findErr != nil {
		config.ErrorStatus("failed to search scam reports", http.StatusInternalServerError, w, findErr)
		return
	}
	if countErr != nil {
		config.ErrorStatus("failed to count search results", http.StatusInternalServerError, w, countErr)
		return
	}

	respondJSON(w, http.StatusOK, models.SearchResponse{
		Success: true,
		Data:    data,
		Message: fmt.Sprintf("Found %d results for %q", len(data), q),
		SearchInfo: models.SearchInfo{
			Query:           q,
			TotalResults:    count,
			ReturnedResults: len(data),
		},
	})
}

// ScamByIDHandler returns a scam report by ID
func (s Scam) ScamByIDHandler(w http.ResponseWriter, r *http.Request) {
	scamID := mux.Vars(r)["scam_id"]

	sID, err := primitive.ObjectIDFromHex(scamID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := s.DB.FindOne(ctx, bson.M{"_id": sID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorStatus("Scam not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get scam report by ID", http.StatusInternalServerError, w, err)
		return
	}

	respondJSON(w, http.StatusOK, models.ScamResponse{Success: true, Data: *dbResp})
}

// CreateScamHandler validates and stores a new scam report
func (s Scam) CreateScamHandler(w http.ResponseWriter, r *http.Request) {
	var report models.ScamReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	report.Normalize()
	if verrs := report.Validate(); verrs != nil {
		respondValidation(w, verrs)
		return
	}

	report.ID = primitive.NewObjectID()
	now := primitive.NewDateTimeFromTime(time.Now())
	report.CreatedAt = now
	report.UpdatedAt = now

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := s.DB.InsertOne(ctx, report); err != nil {
		config.ErrorStatus("failed to insert scam report", http.StatusInternalServerError, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, models.ScamResponse{Success: true, Data: report})
}

// UpdateScamHandler fully replaces a scam report after re-validating it. The
// stored createdAt is preserved; updatedAt is refreshed.
func (s Scam) UpdateScamHandler(w http.ResponseWriter, r *http.Request) {
	scamID := mux.Vars(r)["scam_id"]

	sID, err := primitive.ObjectIDFromHex(scamID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var report models.ScamReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	report.Normalize()
	if verrs := report.Validate(); verrs != nil {
		respondValidation(w, verrs)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := s.DB.FindOne(ctx, bson.M{"_id": sID})
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			config.ErrorStatus("Scam not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get scam report by ID", http.StatusInternalServerError, w, err)
		return
	}

	report.ID = sID
	report.CreatedAt = existing.CreatedAt
	report.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	matched, err := s.DB.ReplaceOne(ctx, bson.M{"_id": sID}, report)
	if err != nil {
		config.ErrorStatus("failed to update scam report", http.StatusInternalServerError, w, err)
		return
	}
	if matched == 0 {
		// deleted between the read and the replace
		config.ErrorStatus("Scam not found", http.StatusNotFound, w, mongo.ErrNoDocuments)
		return
	}

	respondJSON(w, http.StatusOK, models.ScamResponse{Success: true, Data: report})
}

// DeleteScamHandler removes a scam report by ID
func (s Scam) DeleteScamHandler(w http.ResponseWriter, r *http.Request) {
	scamID := mux.Vars(r)["scam_id"]

	sID, err := primitive.ObjectIDFromHex(scamID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	deleted, err := s.DB.DeleteOne(ctx, bson.M{"_id": sID})
	if err != nil {
		config.ErrorStatus("failed to delete scam report", http.StatusInternalServerError, w, err)
		return
	}
	if deleted == 0 {
		config.ErrorStatus("Scam not found", http.StatusNotFound, w, mongo.ErrNoDocuments)
		return
	}

	respondJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: "Scam report deleted successfully"})
}

func pages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	b, err := json.Marshal(body)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func respondValidation(w http.ResponseWriter, errs []models.FieldError) {
	respondJSON(w, http.StatusBadRequest, models.ValidationErrorResponse{Success: false, Errors: errs})
}
