package models

// HealthCheckResponse returns if the service is alive
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// FieldError carries a per-field validation message
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrorResponse is written for rejected query params or documents
type ValidationErrorResponse struct {
	Success bool         `json:"success"`
	Errors  []FieldError `json:"errors"`
}

// Pagination describes the page window of a list response
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// ScamListResponse is the body of the list endpoint
type ScamListResponse struct {
	Success    bool         `json:"success"`
	Data       []ScamReport `json:"data"`
	Pagination Pagination   `json:"pagination"`
}

// ScamsResponse wraps a plain list of reports (trending)
type ScamsResponse struct {
	Success bool         `json:"success"`
	Data    []ScamReport `json:"data"`
}

// ScamResponse wraps a single report
type ScamResponse struct {
	Success bool       `json:"success"`
	Data    ScamReport `json:"data"`
}

// TagListResponse wraps the distinct tags in use
type TagListResponse struct {
	Success bool     `json:"success"`
	Data    []string `json:"data"`
}

// TagCount is one entry of the per-tag aggregation, decoded straight from
// the $group stage where the tag lands in _id
type TagCount struct {
	Tag   string `json:"tag" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// ScamStats holds the collection-wide aggregate statistics
type ScamStats struct {
	TotalScams    int64      `json:"totalScams"`
	AvgFraudScore int        `json:"avgFraudScore"`
	HighRiskScams int64      `json:"highRiskScams"`
	TagStats      []TagCount `json:"tagStats"`
}

// StatsResponse wraps ScamStats
type StatsResponse struct {
	Success bool      `json:"success"`
	Data    ScamStats `json:"data"`
}

// SearchInfo describes how a text search resolved
type SearchInfo struct {
	Query           string `json:"query"`
	TotalResults    int64  `json:"totalResults"`
	ReturnedResults int    `json:"returnedResults"`
}

// SearchResponse is the body of the dedicated search endpoint
type SearchResponse struct {
	Success    bool         `json:"success"`
	Data       []ScamReport `json:"data"`
	Message    string       `json:"message"`
	SearchInfo SearchInfo   `json:"searchInfo"`
}

// MessageResponse is written for operations with no payload (delete)
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
