package records

import "time"

// Partition values. Each table holds a single record kind under a constant
// partition key with a timestamp-derived sort key, so "most recent first" is a
// Query with ScanIndexForward=false. Single-partition layout is fine at this
// app's write volume.
const (
	generationPartition = "GENERATION"
	statusPartition     = "STATUS_CHECK"
)

// sortKeyLayout is fixed-width (trailing zeros kept, always UTC) so DynamoDB's
// byte-wise string comparison matches chronological order. RFC3339Nano trims
// trailing zeros, which breaks that: "…00.12Z" sorts after "…00.123Z".
const sortKeyLayout = "2006-01-02T15:04:05.000000000Z07:00"

// sortKeyFor builds the range key for a record: fixed-width UTC timestamp plus
// the record id, so two writes in the same instant cannot overwrite each other.
func sortKeyFor(t time.Time, id string) string {
	return t.UTC().Format(sortKeyLayout) + "#" + id
}

// PreviewLength is how much of the stored code the list endpoint exposes.
const PreviewLength = 200

// GenerationRecord is the item stored in the generations table. Records are
// written exactly once and never updated. pk and sk form the table's primary
// key; both are filled in by the store on Put.
type GenerationRecord struct {
	PK        string    `dynamodbav:"pk"`
	SortKey   string    `dynamodbav:"sk"`
	ID        string    `dynamodbav:"id"`
	Prompt    string    `dynamodbav:"prompt"`
	Code      string    `dynamodbav:"code"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

// StatusRecord is the item stored in the status checks table.
type StatusRecord struct {
	PK         string    `dynamodbav:"pk"`
	SortKey    string    `dynamodbav:"sk"`
	ID         string    `dynamodbav:"id"`
	ClientName string    `dynamodbav:"client_name"`
	CreatedAt  time.Time `dynamodbav:"created_at"`
}

// GenerationSummary is the trimmed view returned by list endpoints: no table
// keys, and the code cut down to a preview.
type GenerationSummary struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Timestamp time.Time `json:"timestamp"`
	Preview   string    `json:"preview"`
}

// StatusView is the trimmed view of a status check.
type StatusView struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func awsString(s string) *string { return &s }
func awsBool(b bool) *bool       { return &b }
