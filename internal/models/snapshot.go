package models

import (
	"database/sql/driver"
	"errors"
	"time"

	json "github.com/goccy/go-json"
)

// ProposalSnapshot is the frozen copy of the field record and service bundle
// taken when a proposal is sent. Every later render of that proposal reads from
// here, so edits to the live customer record can never change a document a
// client has already received.
type ProposalSnapshot struct {
	ID       string            `json:"id"`
	TakenAt  time.Time         `json:"taken_at"`
	Services []ServiceCategory `json:"services"`
	Fields   FieldRecord       `json:"fields"`
	TotalALL int64             `json:"total_all"`
}

// Value implements the driver.Valuer interface for the jsonb column.
func (s ProposalSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface.
func (s *ProposalSnapshot) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("proposal snapshot: unsupported column type")
	}
	return json.Unmarshal(bytes, s)
}
