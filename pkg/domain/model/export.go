package model

import (
	"strings"
	"time"

	"github.com/m-mizutani/bq2ee/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// ExportDateLayout is the Go layout of export file and asset names,
// e.g. "Mar-7-2023".
const ExportDateLayout = "Jan-2-2006"

const exportFileExt = ".csv"

// ImportDate formats t as month abbreviation, day without padding and four
// digit year joined by hyphens.
func ImportDate(t time.Time) string {
	return t.Format(ExportDateLayout)
}

// ExportFileName returns the object name of the CSV file exported on t.
func ExportFileName(t time.Time) types.ObjectName {
	return types.ObjectName(ImportDate(t) + exportFileExt)
}

// ParseExportDate parses the date part of an export file or asset name. Both
// "Jan-9-2024" and "Jan-9-2024.csv" are accepted.
func ParseExportDate(name string) (time.Time, bool) {
	t, err := time.Parse(ExportDateLayout, strings.TrimSuffix(name, exportFileExt))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type TableRef struct {
	ProjectID types.GoogleProjectID
	DatasetID types.BQDatasetID
	TableID   types.BQTableID
}

func (x TableRef) Validate() error {
	if x.ProjectID == "" || x.DatasetID == "" || x.TableID == "" {
		return goerr.Wrap(types.ErrInvalidOption, "table reference is incomplete",
			goerr.V("project", x.ProjectID),
			goerr.V("dataset", x.DatasetID),
			goerr.V("table", x.TableID),
		)
	}
	return nil
}

func (x TableRef) String() string {
	return x.ProjectID.String() + "." + x.DatasetID.String() + "." + x.TableID.String()
}

// ExtractTableInput is a request to export a table as CSV into Cloud Storage.
type ExtractTableInput struct {
	Source         TableRef
	DestinationURI string
	Location       types.BQLocation
}

type ExtractTableOutput struct {
	JobID string
}

// ExportTableOutput is the result of a completed export.
type ExportTableOutput struct {
	ImportDate     string
	DestinationURI string
	JobID          string
	Object         *ObjectAttrs
}
