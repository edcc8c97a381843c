package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	validator "gopkg.in/go-playground/validator.v9"
)

// ScamReport holds the structure for the scamreports collection in mongo.
// Title, summary, tags and regions are covered by the collection's composite
// text index.
type ScamReport struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title" validate:"required,min=5,max=200"`
	Summary       string             `json:"summary" bson:"summary" validate:"required,min=10,max=2000"`
	DetectionTips []string           `json:"detectionTips" bson:"detectionTips"`
	Tags          []string           `json:"tags" bson:"tags" validate:"min=1,dive,scamtag"`
	Platform      []string           `json:"platform" bson:"platform" validate:"min=1,dive,scamplatform"`
	Regions       []string           `json:"regions" bson:"regions"`
	SourceURLs    []string           `json:"sourceUrls" bson:"sourceUrls"`
	FraudScore    int                `json:"fraudScore" bson:"fraudScore" validate:"min=0,max=100"`
	CreatedAt     primitive.DateTime `json:"createdAt" bson:"createdAt"`
	UpdatedAt     primitive.DateTime `json:"updatedAt" bson:"updatedAt"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("scamtag", func(fl validator.FieldLevel) bool {
		return IsScamTag(fl.Field().String())
	})
	_ = v.RegisterValidation("scamplatform", func(fl validator.FieldLevel) bool {
		return IsScamPlatform(fl.Field().String())
	})
	return v
}

// Validate checks the report against the write-time invariants and returns
// one message per failing field. A nil result means the report can be stored.
func (s *ScamReport) Validate() []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldName(fe), Message: messageFor(fe)})
	}
	return out
}

// Normalize trims surrounding whitespace and replaces nil slices with empty
// ones so stored documents always carry the array fields.
func (s *ScamReport) Normalize() {
	s.Title = strings.TrimSpace(s.Title)
	s.Summary = strings.TrimSpace(s.Summary)
	if s.DetectionTips == nil {
		s.DetectionTips = []string{}
	}
	if s.Tags == nil {
		s.Tags = []string{}
	}
	if s.Platform == nil {
		s.Platform = []string{}
	}
	if s.Regions == nil {
		s.Regions = []string{}
	}
	if s.SourceURLs == nil {
		s.SourceURLs = []string{}
	}
}

func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	// dive failures report as e.g. "Tags[2]"
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func messageFor(fe validator.FieldError) string {
	switch fieldName(fe) {
	case "title":
		return "Title must be between 5 and 200 characters"
	case "summary":
		return "Summary must be between 10 and 2000 characters"
	case "tags":
		if fe.Tag() == "scamtag" {
			return "Tag is not in the allowed tag list"
		}
		return "At least one tag is required"
	case "platform":
		if fe.Tag() == "scamplatform" {
			return "Platform is not in the allowed platform list"
		}
		return "At least one platform is required"
	case "fraudScore":
		return "Fraud score must be between 0 and 100"
	default:
		return "Invalid value"
	}
}
