package analysis

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type Finding struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Confidence  int    `json:"confidence"`
}

// Result is the outcome of analyzing an uploaded medical report. It is
// persisted as a JSONB column, hence the Valuer/Scanner pair.
type Result struct {
	Confidence      int       `json:"confidence"`
	Findings        []Finding `json:"findings"`
	Recommendations []string  `json:"recommendations"`
	RiskFactors     []string  `json:"riskFactors"`
	Medications     []string  `json:"medications"`
}

func (r Result) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *Result) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	case nil:
		*r = Result{}
		return nil
	default:
		return fmt.Errorf("unsupported analysis result source type %T", src)
	}
}
