package queries

import (
	"encoding/json"
	"fmt"
)

// attachmentList scans the JSON-encoded attachments column into a string
// slice. The write side serializes the column with gorm's json serializer;
// the read side sees raw JSON bytes.
type attachmentList []string

func (a *attachmentList) Scan(value any) error {
	if value == nil {
		*a = nil
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return fmt.Errorf("unsupported attachments column type %T", value)
	}
}
