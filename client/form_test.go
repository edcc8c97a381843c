package client_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scamdex/scamdex-api/client"
)

func TestFormStateToggleTag(t *testing.T) {
	empty := client.FormState{}

	withTag := empty.ToggleTag("Phishing")
	assert.Equal(t, []string{"Phishing"}, withTag.Tags)
	assert.Empty(t, empty.Tags) // original untouched

	both := withTag.ToggleTag("UPIFraud")
	assert.Equal(t, []string{"Phishing", "UPIFraud"}, both.Tags)

	removed := both.ToggleTag("Phishing")
	assert.Equal(t, []string{"UPIFraud"}, removed.Tags)
	assert.Equal(t, []string{"Phishing", "UPIFraud"}, both.Tags)
}

func TestFormStateTogglePlatform(t *testing.T) {
	f := client.FormState{}.TogglePlatform("WhatsApp").TogglePlatform("SMS")
	assert.Equal(t, []string{"WhatsApp", "SMS"}, f.Platforms)

	f = f.TogglePlatform("WhatsApp")
	assert.Equal(t, []string{"SMS"}, f.Platforms)
}

func TestFormStateSettersReturnCopies(t *testing.T) {
	base := client.FormState{}

	titled := base.SetTitle("Fake UPI Link Phishing Scam")
	assert.Empty(t, base.Title)
	assert.Equal(t, "Fake UPI Link Phishing Scam", titled.Title)

	scored := titled.SetFraudScore(88)
	assert.Zero(t, titled.FraudScore)
	assert.Equal(t, 88, scored.FraudScore)
}

func TestFormStateReset(t *testing.T) {
	f := client.FormState{}.
		SetTitle("Fake UPI Link Phishing Scam").
		ToggleTag("Phishing").
		SetFraudScore(88)

	assert.Equal(t, client.FormState{}, f.Reset())
}

func TestFormStateReport(t *testing.T) {
	f := client.FormState{}.
		SetTitle("Fake UPI Link Phishing Scam").
		SetSummary("Phishing links disguised as merchants drain accounts.").
		ToggleTag("UPIFraud").
		TogglePlatform("WhatsApp").
		SetRegions([]string{"Pan-India"}).
		SetFraudScore(88)

	r := f.Report()
	assert.Equal(t, "Fake UPI Link Phishing Scam", r.Title)
	assert.Equal(t, []string{"UPIFraud"}, r.Tags)
	assert.Equal(t, []string{"WhatsApp"}, r.Platform)
	assert.Equal(t, []string{"Pan-India"}, r.Regions)
	assert.Equal(t, 88, r.FraudScore)
	assert.Nil(t, r.Validate())

	// mutating the draft afterwards must not leak into the report
	f.Tags = append(f.Tags, "Phishing")
	assert.Equal(t, []string{"UPIFraud"}, r.Tags)
}
