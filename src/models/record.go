package models

import "time"

// CategorySource records which stage of the resolver chain produced a
// label. It is provenance metadata, never an error signal.
type CategorySource string

const (
	SourceRemote          CategorySource = "remote"
	SourceRegexFallback   CategorySource = "regex_fallback"
	SourceKeywordFallback CategorySource = "keyword_fallback"
	SourcePromotional     CategorySource = "promotional"
)

type CategoryResult struct {
	Label  string         `json:"category"`
	Source CategorySource `json:"category_source"`
}

// TransactionRecord is the persisted row: the raw message plus extracted
// fields plus the resolved category. Immutable once written; duplicate
// submissions of the same text produce duplicate rows.
type TransactionRecord struct {
	ID     int64   `json:"id,omitempty"`
	UID    string  `json:"uid"`
	SMS    string  `json:"sms"`
	Sender *string `json:"sender"`
	ExtractedFields
	CategoryResult
	CreatedAt time.Time `json:"created_at"`
}
