package client

import "github.com/scamdex/scamdex-api/models"

// FormState is an immutable draft of a report under composition. Every
// transition returns a new value and leaves the receiver untouched, so a UI
// can hold onto old states for undo or comparison.
type FormState struct {
	Title         string
	Summary       string
	DetectionTips []string
	Tags          []string
	Platforms     []string
	Regions       []string
	SourceURLs    []string
	FraudScore    int
}

// SetTitle returns a copy with the title replaced.
func (f FormState) SetTitle(title string) FormState {
	f.Title = title
	return f
}

// SetSummary returns a copy with the summary replaced.
func (f FormState) SetSummary(summary string) FormState {
	f.Summary = summary
	return f
}

// SetDetectionTips returns a copy with the detection tips replaced.
func (f FormState) SetDetectionTips(tips []string) FormState {
	f.DetectionTips = append([]string(nil), tips...)
	return f
}

// ToggleTag returns a copy with tag added if absent or removed if present.
func (f FormState) ToggleTag(tag string) FormState {
	f.Tags = toggle(f.Tags, tag)
	return f
}

// TogglePlatform returns a copy with platform added if absent or removed if
// present.
func (f FormState) TogglePlatform(platform string) FormState {
	f.Platforms = toggle(f.Platforms, platform)
	return f
}

// SetRegions returns a copy with the regions replaced.
func (f FormState) SetRegions(regions []string) FormState {
	f.Regions = append([]string(nil), regions...)
	return f
}

// SetSourceURLs returns a copy with the source URLs replaced.
func (f FormState) SetSourceURLs(urls []string) FormState {
	f.SourceURLs = append([]string(nil), urls...)
	return f
}

// SetFraudScore returns a copy with the fraud score replaced.
func (f FormState) SetFraudScore(score int) FormState {
	f.FraudScore = score
	return f
}

// Reset returns an empty draft.
func (f FormState) Reset() FormState {
	return FormState{}
}

// Report materializes the draft as a ScamReport ready for validation and
// submission.
func (f FormState) Report() models.ScamReport {
	return models.ScamReport{
		Title:         f.Title,
		Summary:       f.Summary,
		DetectionTips: append([]string(nil), f.DetectionTips...),
		Tags:          append([]string(nil), f.Tags...),
		Platform:      append([]string(nil), f.Platforms...),
		Regions:       append([]string(nil), f.Regions...),
		SourceURLs:    append([]string(nil), f.SourceURLs...),
		FraudScore:    f.FraudScore,
	}
}

func toggle(list []string, value string) []string {
	out := make([]string, 0, len(list)+1)
	found := false
	for _, v := range list {
		if v == value {
			found = true
			continue
		}
		out = append(out, v)
	}
	if !found {
		out = append(out, value)
	}
	return out
}
