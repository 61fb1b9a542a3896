package types

import "log/slog"

type (
	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
	BQLocation      string
	BucketName      string
	ObjectName      string
	AssetID         string
	ServiceAccount  string
	TaskID          string
	OperationName   string
	CSVDelimiter    string
)

const (
	DefaultBQLocation   BQLocation   = "us-east1"
	DefaultCSVDelimiter CSVDelimiter = "|"
)

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }
func (x BQLocation) String() string      { return string(x) }
func (x BucketName) String() string      { return string(x) }
func (x ObjectName) String() string      { return string(x) }
func (x AssetID) String() string         { return string(x) }
func (x TaskID) String() string          { return string(x) }
func (x OperationName) String() string   { return string(x) }
func (x CSVDelimiter) String() string    { return string(x) }

func (x ServiceAccount) String() string { return string(x) }

// LogValue keeps the account domain visible but hides the account name.
func (x ServiceAccount) LogValue() slog.Value {
	if x == "" {
		return slog.StringValue("")
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] == '@' {
			return slog.StringValue("***" + string(x[i:]))
		}
	}
	return slog.StringValue("***")
}
