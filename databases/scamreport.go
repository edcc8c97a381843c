package databases

// go generate: mockery --name ScamReportDatabase

import (
	"context"
	"math"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scamdex/scamdex-api/models"
)

const scamReportName = "scamreports"

// ScamReportDatabase contains the methods to use with the scam report collection
type ScamReportDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.ScamReport, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ScamReport, error)
	InsertOne(ctx context.Context, report models.ScamReport, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	ReplaceOne(ctx context.Context, filter interface{}, report models.ScamReport) (int64, error)
	DeleteOne(ctx context.Context, filter interface{}) (int64, error)
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
	DistinctTags(ctx context.Context) ([]string, error)
	Stats(ctx context.Context) (*models.ScamStats, error)
}

type scamReportDatabase struct {
	db DatabaseHelper
}

// NewScamReportDatabase initializes a new instance of scam report database with the provided db connection
func NewScamReportDatabase(db DatabaseHelper) ScamReportDatabase {
	return &scamReportDatabase{
		db: db,
	}
}

func (c *scamReportDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.ScamReport, error) {
	report := &models.ScamReport{}
	err := c.db.Collection(scamReportName).FindOne(ctx, filter, opts...).Decode(&report)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (c *scamReportDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ScamReport, error) {
	var reports []models.ScamReport
	cur, err := c.db.Collection(scamReportName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&reports)
	if err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *scamReportDatabase) InsertOne(ctx context.Context, report models.ScamReport, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(scamReportName).InsertOne(ctx, report, opts...)
}

func (c *scamReportDatabase) ReplaceOne(ctx context.Context, filter interface{}, report models.ScamReport) (int64, error) {
	return c.db.Collection(scamReportName).ReplaceOne(ctx, filter, report)
}

func (c *scamReportDatabase) DeleteOne(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(scamReportName).DeleteOne(ctx, filter)
}

func (c *scamReportDatabase) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return c.db.Collection(scamReportName).CountDocuments(ctx, filter)
}

// DistinctTags returns the tag values actually present in the collection,
// alphabetically ordered. This is a subset of models.ScamTags, not the full
// vocabulary.
func (c *scamReportDatabase) DistinctTags(ctx context.Context) ([]string, error) {
	values, err := c.db.Collection(scamReportName).Distinct(ctx, "tags", bson.M{})
	if err != nil {
		return nil, err
	}
	tags := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	sort.Strings(tags)
	return tags, nil
}

type scamTotals struct {
	TotalScams    int64   `bson:"totalScams"`
	AvgFraudScore float64 `bson:"avgFraudScore"`
	HighRiskScams int64   `bson:"highRiskScams"`
}

// Stats aggregates collection-wide totals plus per-tag counts. On an empty
// collection every numeric field is zero and tagStats is empty.
func (c *scamReportDatabase) Stats(ctx context.Context) (*models.ScamStats, error) {
	totalsPipeline := []bson.M{
		{"$group": bson.M{
			"_id":           nil,
			"totalScams":    bson.M{"$sum": 1},
			"avgFraudScore": bson.M{"$avg": "$fraudScore"},
			"highRiskScams": bson.M{"$sum": bson.M{
				"$cond": []interface{}{bson.M{"$gte": []interface{}{"$fraudScore", 80}}, 1, 0},
			}},
		}},
	}
	cur, err := c.db.Collection(scamReportName).Aggregate(ctx, totalsPipeline)
	if err != nil {
		return nil, err
	}
	var totals []scamTotals
	if err := cur.Decode(&totals); err != nil {
		return nil, err
	}

	tagPipeline := []bson.M{
		{"$unwind": "$tags"},
		{"$group": bson.M{"_id": "$tags", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
	}
	cur, err = c.db.Collection(scamReportName).Aggregate(ctx, tagPipeline)
	if err != nil {
		return nil, err
	}
	var tagStats []models.TagCount
	if err := cur.Decode(&tagStats); err != nil {
		return nil, err
	}
	if tagStats == nil {
		tagStats = []models.TagCount{}
	}

	stats := &models.ScamStats{TagStats: tagStats}
	if len(totals) > 0 {
		stats.TotalScams = totals[0].TotalScams
		stats.AvgFraudScore = int(math.Round(totals[0].AvgFraudScore))
		stats.HighRiskScams = totals[0].HighRiskScams
	}
	return stats, nil
}
