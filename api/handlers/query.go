package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scamdex/scamdex-api/models"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxLimit     = 50
)

var sortKeys = map[string]bool{
	"createdAt":  true,
	"fraudScore": true,
	"title":      true,
}

// ScamQuery is the compiled form of the list endpoint's query parameters.
// Every field is optional; the zero values of Page, Limit and Sort are filled
// with the documented defaults by ParseScamQuery.
type ScamQuery struct {
	Q         string
	Tags      []string
	Platforms []string
	ScoreMin  *int
	ScoreMax  *int
	Page      int
	Limit     int
	Sort      string
}

// ParseScamQuery validates and compiles the request's query parameters.
// Unrecognized parameters are ignored; out-of-range values reject the request
// with per-field messages before any database access.
func ParseScamQuery(r *http.Request) (*ScamQuery, []models.FieldError) {
	values := r.URL.Query()
	var errs []models.FieldError

	q := &ScamQuery{
		Q:         strings.TrimSpace(values.Get("q")),
		Tags:      splitList(values.Get("tags")),
		Platforms: splitList(values.Get("platform")),
		Page:      defaultPage,
		Limit:     defaultLimit,
		Sort:      "createdAt",
	}

	if raw := values.Get("fraudScoreMin"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 100 {
			errs = append(errs, models.FieldError{Field: "fraudScoreMin", Message: "fraudScoreMin must be an integer between 0 and 100"})
		} else {
			q.ScoreMin = &n
		}
	}
	if raw := values.Get("fraudScoreMax"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 100 {
			errs = append(errs, models.FieldError{Field: "fraudScoreMax", Message: "fraudScoreMax must be an integer between 0 and 100"})
		} else {
			q.ScoreMax = &n
		}
	}
	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, models.FieldError{Field: "page", Message: "page must be an integer greater than or equal to 1"})
		} else {
			q.Page = n
		}
	}
	if raw := values.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			errs = append(errs, models.FieldError{Field: "limit", Message: "limit must be an integer between 1 and 50"})
		} else {
			q.Limit = n
		}
	}
	if raw := values.Get("sort"); raw != "" {
		if !sortKeys[raw] {
			errs = append(errs, models.FieldError{Field: "sort", Message: "sort must be one of createdAt, fraudScore, title"})
		} else {
			q.Sort = raw
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return q, nil
}

// Filter returns the mongo filter document. Present parameters AND-compose;
// the tag and platform lists are each an $in (any-of) match.
func (q *ScamQuery) Filter() bson.M {
	filter := bson.M{}
	if q.Q != "" {
		filter["$text"] = bson.M{"$search": q.Q}
	}
	if len(q.Tags) > 0 {
		filter["tags"] = bson.M{"$in": q.Tags}
	}
	if len(q.Platforms) > 0 {
		filter["platform"] = bson.M{"$in": q.Platforms}
	}
	if q.ScoreMin != nil || q.ScoreMax != nil {
		score := bson.M{}
		if q.ScoreMin != nil {
			score["$gte"] = *q.ScoreMin
		}
		if q.ScoreMax != nil {
			score["$lte"] = *q.ScoreMax
		}
		filter["fraudScore"] = score
	}
	return filter
}

// Skip returns the number of documents the page window starts after.
func (q *ScamQuery) Skip() int64 {
	return int64((q.Page - 1) * q.Limit)
}

// FindOptions returns the sort/skip/limit options for the compiled query.
// Direction is always descending whatever the sort key; this is a fixed
// policy, not user-selectable.
func (q *ScamQuery) FindOptions() *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: q.Sort, Value: -1}}).
		SetSkip(q.Skip()).
		SetLimit(int64(q.Limit))
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
