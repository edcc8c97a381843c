package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/scamdex/scamdex-api/api/handlers"
)

func newListRequest(t *testing.T, rawQuery string) *http.Request {
	t.Helper()
	req, err := http.NewRequest("GET", "/api/scams?"+rawQuery, nil)
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func TestParseScamQueryDefaults(t *testing.T) {
	q, errs := handlers.ParseScamQuery(newListRequest(t, ""))

	assert.Nil(t, errs)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, "createdAt", q.Sort)
	assert.Empty(t, q.Q)
	assert.Nil(t, q.Tags)
	assert.Nil(t, q.Platforms)
	assert.Nil(t, q.ScoreMin)
	assert.Nil(t, q.ScoreMax)
}

func TestParseScamQueryFullParameterSet(t *testing.T) {
	q, errs := handlers.ParseScamQuery(newListRequest(t,
		"q=upi&tags=UPIFraud,Phishing&platform=WhatsApp&fraudScoreMin=10&fraudScoreMax=90&page=3&limit=10&sort=fraudScore"))

	assert.Nil(t, errs)
	assert.Equal(t, "upi", q.Q)
	assert.Equal(t, []string{"UPIFraud", "Phishing"}, q.Tags)
	assert.Equal(t, []string{"WhatsApp"}, q.Platforms)
	assert.Equal(t, 10, *q.ScoreMin)
	assert.Equal(t, 90, *q.ScoreMax)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 10, q.Limit)
	assert.Equal(t, "fraudScore", q.Sort)
}

func TestParseScamQueryInvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		query string
		field string
	}{
		{"invalid sort key", "sort=bogus", "sort"},
		{"limit above maximum", "limit=51", "limit"},
		{"limit not an integer", "limit=abc", "limit"},
		{"page below one", "page=0", "page"},
		{"fraudScoreMin above range", "fraudScoreMin=101", "fraudScoreMin"},
		{"fraudScoreMax negative", "fraudScoreMax=-1", "fraudScoreMax"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q, errs := handlers.ParseScamQuery(newListRequest(t, tc.query))
			assert.Nil(t, q)
			if assert.Len(t, errs, 1) {
				assert.Equal(t, tc.field, errs[0].Field)
			}
		})
	}
}

func TestParseScamQueryZeroMinIsValid(t *testing.T) {
	q, errs := handlers.ParseScamQuery(newListRequest(t, "fraudScoreMin=0"))

	assert.Nil(t, errs)
	if assert.NotNil(t, q.ScoreMin) {
		assert.Equal(t, 0, *q.ScoreMin)
	}
	// a present zero bound still reaches the filter
	assert.Equal(t, bson.M{"fraudScore": bson.M{"$gte": 0}}, q.Filter())
}

func TestScamQueryFilterComposition(t *testing.T) {
	q, errs := handlers.ParseScamQuery(newListRequest(t,
		"q=ponzi&tags=PonziScheme&platform=Telegram,WhatsApp&fraudScoreMin=50&fraudScoreMax=99"))
	assert.Nil(t, errs)

	assert.Equal(t, bson.M{
		"$text":      bson.M{"$search": "ponzi"},
		"tags":       bson.M{"$in": []string{"PonziScheme"}},
		"platform":   bson.M{"$in": []string{"Telegram", "WhatsApp"}},
		"fraudScore": bson.M{"$gte": 50, "$lte": 99},
	}, q.Filter())
}

func TestScamQueryEmptyFilter(t *testing.T) {
	q, errs := handlers.ParseScamQuery(newListRequest(t, ""))
	assert.Nil(t, errs)
	assert.Equal(t, bson.M{}, q.Filter())
}

func TestScamQueryFindOptionsSortAlwaysDescending(t *testing.T) {
	// direction is a fixed policy whatever the key, title included; the
	// in-memory mirror sorts title the other way around
	for _, key := range []string{"createdAt", "fraudScore", "title"} {
		t.Run(key, func(t *testing.T) {
			q, errs := handlers.ParseScamQuery(newListRequest(t, "sort="+key))
			assert.Nil(t, errs)

			opts := q.FindOptions()
			assert.Equal(t, bson.D{{Key: key, Value: -1}}, opts.Sort)
		})
	}
}

func TestScamQueryFindOptionsWindow(t *testing.T) {
	q, errs := handlers.ParseScamQuery(newListRequest(t, "page=3&limit=10"))
	assert.Nil(t, errs)

	opts := q.FindOptions()
	assert.Equal(t, int64(20), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
}

func TestScamQuerySkip(t *testing.T) {
	q, errs := handlers.ParseScamQuery(newListRequest(t, "page=3&limit=10"))
	assert.Nil(t, errs)
	assert.Equal(t, int64(20), q.Skip())

	q, errs = handlers.ParseScamQuery(newListRequest(t, ""))
	assert.Nil(t, errs)
	assert.Equal(t, int64(0), q.Skip())
}
