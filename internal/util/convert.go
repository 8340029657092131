package util

import "encoding/json"

// Rebind converts an already-decoded JSON value (typically map[string]any)
// into a typed struct by round-tripping through encoding/json. Processors use
// it to turn validated argument maps into their input types without
// hand-written field copies.
func Rebind(in any, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
