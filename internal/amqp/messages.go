package amqp

import (
	"encoding/json"
	"time"
)

// ExportCompletedMessage announces a finished export. It carries only the
// format, filename, and counts; consumers interested in the content fetch
// the delivered file themselves.
type ExportCompletedMessage struct {
	Format        string    `json:"format"`
	Filename      string    `json:"filename"`
	WageRecords   int       `json:"wageRecords"`
	ManualRecords int       `json:"manualRecords"`
	TotalRecords  int       `json:"totalRecords"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewExportCompletedMessage builds a message stamped with the current time.
func NewExportCompletedMessage(format, filename string, wage, manual int) *ExportCompletedMessage {
	return &ExportCompletedMessage{
		Format:        format,
		Filename:      filename,
		WageRecords:   wage,
		ManualRecords: manual,
		TotalRecords:  wage + manual,
		Timestamp:     time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *ExportCompletedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// ExportCompletedMessageFromJSON creates a message from JSON bytes.
func ExportCompletedMessageFromJSON(data []byte) (*ExportCompletedMessage, error) {
	var msg ExportCompletedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
