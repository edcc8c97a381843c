package models_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scamdex/scamdex-api/models"
)

func validReport() models.ScamReport {
	return models.ScamReport{
		Title:      "Fake UPI Link Phishing Scam",
		Summary:    "Phishing links disguised as merchants drain accounts via auto-debit approvals.",
		Tags:       []string{"UPIFraud", "Phishing"},
		Platform:   []string{"WhatsApp", "SMS"},
		Regions:    []string{"Pan-India"},
		FraudScore: 88,
	}
}

func TestScamReportValidateOK(t *testing.T) {
	r := validReport()
	assert.Nil(t, r.Validate())
}

func TestScamReportValidateFailures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*models.ScamReport)
		field   string
		message string
	}{
		{
			"title too short",
			func(r *models.ScamReport) { r.Title = "abc" },
			"title", "Title must be between 5 and 200 characters",
		},
		{
			"title too long",
			func(r *models.ScamReport) { r.Title = strings.Repeat("x", 201) },
			"title", "Title must be between 5 and 200 characters",
		},
		{
			"summary too short",
			func(r *models.ScamReport) { r.Summary = "short" },
			"summary", "Summary must be between 10 and 2000 characters",
		},
		{
			"no tags",
			func(r *models.ScamReport) { r.Tags = nil },
			"tags", "At least one tag is required",
		},
		{
			"unknown tag",
			func(r *models.ScamReport) { r.Tags = []string{"NotARealTag"} },
			"tags", "Tag is not in the allowed tag list",
		},
		{
			"no platform",
			func(r *models.ScamReport) { r.Platform = nil },
			"platform", "At least one platform is required",
		},
		{
			"unknown platform",
			func(r *models.ScamReport) { r.Platform = []string{"Carrier Pigeon"} },
			"platform", "Platform is not in the allowed platform list",
		},
		{
			"fraud score above range",
			func(r *models.ScamReport) { r.FraudScore = 101 },
			"fraudScore", "Fraud score must be between 0 and 100",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := validReport()
			tc.mutate(&r)
			errs := r.Validate()
			if assert.Len(t, errs, 1) {
				assert.Equal(t, tc.field, errs[0].Field)
				assert.Equal(t, tc.message, errs[0].Message)
			}
		})
	}
}

func TestScamReportNormalize(t *testing.T) {
	r := models.ScamReport{Title: "  Fake UPI Link Phishing Scam  ", Summary: " trailing space summary "}
	r.Normalize()

	assert.Equal(t, "Fake UPI Link Phishing Scam", r.Title)
	assert.Equal(t, "trailing space summary", r.Summary)
	assert.NotNil(t, r.Tags)
	assert.NotNil(t, r.Platform)
	assert.NotNil(t, r.Regions)
	assert.NotNil(t, r.SourceURLs)
	assert.NotNil(t, r.DetectionTips)
}

func TestVocabularyMembership(t *testing.T) {
	assert.True(t, models.IsScamTag("PonziScheme"))
	assert.True(t, models.IsScamTag("DigitalArrest"))
	assert.False(t, models.IsScamTag("ponzischeme"))
	assert.False(t, models.IsScamTag(""))

	assert.True(t, models.IsScamPlatform("WhatsApp"))
	assert.True(t, models.IsScamPlatform("Offline Agent Network"))
	assert.False(t, models.IsScamPlatform("whatsapp"))
}
