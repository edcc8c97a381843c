package databases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/scamdex/scamdex-api/databases"
	"github.com/scamdex/scamdex-api/databases/mocks"
	"github.com/scamdex/scamdex-api/models"
)

func TestScamReportDatabaseDistinctTagsSorted(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("Distinct", mock.Anything, "tags", mock.Anything).
		Return([]interface{}{"UPIFraud", "ChitFund", "Phishing"}, nil)
	db.On("Collection", "scamreports").Return(conn)

	sdb := databases.NewScamReportDatabase(db)
	tags, err := sdb.DistinctTags(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"ChitFund", "Phishing", "UPIFraud"}, tags)
}

func TestScamReportDatabaseDistinctTagsSkipsNonStrings(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("Distinct", mock.Anything, "tags", mock.Anything).
		Return([]interface{}{"Phishing", 42, nil}, nil)
	db.On("Collection", "scamreports").Return(conn)

	sdb := databases.NewScamReportDatabase(db)
	tags, err := sdb.DistinctTags(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []string{"Phishing"}, tags)
}

func TestScamReportDatabaseDistinctTagsError(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("Distinct", mock.Anything, "tags", mock.Anything).
		Return(nil, errors.New("mocked-error"))
	db.On("Collection", "scamreports").Return(conn)

	sdb := databases.NewScamReportDatabase(db)
	tags, err := sdb.DistinctTags(context.Background())

	assert.Nil(t, tags)
	assert.EqualError(t, err, "mocked-error")
}

func TestScamReportDatabaseStatsEmptyCollection(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	// both pipelines decode into empty result sets
	cursorHelper.On("Decode", mock.Anything).Return(nil)
	conn.On("Aggregate", mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.On("Collection", "scamreports").Return(conn)

	sdb := databases.NewScamReportDatabase(db)
	stats, err := sdb.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalScams)
	assert.Equal(t, 0, stats.AvgFraudScore)
	assert.Equal(t, int64(0), stats.HighRiskScams)
	assert.NotNil(t, stats.TagStats)
	assert.Empty(t, stats.TagStats)
}

func TestScamReportDatabaseStatsAggregateError(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("Aggregate", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))
	db.On("Collection", "scamreports").Return(conn)

	sdb := databases.NewScamReportDatabase(db)
	stats, err := sdb.Stats(context.Background())

	assert.Nil(t, stats)
	assert.EqualError(t, err, "mocked-error")
}

func TestScamReportDatabaseFindDecodesReports(t *testing.T) {
	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.ScamReport)
		*arg = []models.ScamReport{{Title: "Fake UPI Link Phishing Scam"}}
	})
	conn.On("Find", mock.Anything, mock.Anything).Return(cursorHelper, nil)
	db.On("Collection", "scamreports").Return(conn)

	sdb := databases.NewScamReportDatabase(db)
	reports, err := sdb.Find(context.Background(), map[string]interface{}{})

	assert.NoError(t, err)
	if assert.Len(t, reports, 1) {
		assert.Equal(t, "Fake UPI Link Phishing Scam", reports[0].Title)
	}
}
