package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

type NodeResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Lat       float64    `json:"lat"`
	Lng       float64    `json:"lng"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

type ListNodesResponse struct {
	Nodes []NodeResponse `json:"nodes"`
}

// FormValue accepts a JSON string or number and keeps its raw text, so
// coordinate parsing and its errors stay in one place.
type FormValue string

func (v *FormValue) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = FormValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("form value: expected string or number, got %s", b)
	}
	*v = FormValue(n.String())
	return nil
}

type AddNodeRequest struct {
	Name FormValue `json:"name"`
	Lat  FormValue `json:"lat"`
	Lng  FormValue `json:"lng"`
}
