package exercises

import (
	"encoding/json"
	"fmt"
)

type Exercise struct {
	ID        int    `json:"id"`
	WorkoutID int    `json:"workout_id"`
	Name      string `json:"name"`
	Sets      Count  `json:"sets"`
	Reps      Count  `json:"reps"`
}

// Count holds prescribed sets or repetitions. It is kept as text ("3", "8-12", "until failure"),
// and decodes from either a JSON string or a JSON number.
type Count string

func (c *Count) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Count(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("count must be a string or a number: %w", err)
	}
	*c = Count(n.String())
	return nil
}
