package leaderboard

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ExportJSON renders a ranking as
//
//	{"count":N,"scores":[{"rank":1,"name":"...","score":30}, ...]}
func ExportJSON(r Ranking) ([]byte, error) {
	out := []byte(`{"count":0,"scores":[]}`)

	var err error
	out, err = sjson.SetBytes(out, "count", len(r.Entries))
	if err != nil {
		return nil, fmt.Errorf("leaderboard: export: %w", err)
	}
	for i, rec := range r.Entries {
		prefix := fmt.Sprintf("scores.%d.", i)
		if out, err = sjson.SetBytes(out, prefix+"rank", i+1); err != nil {
			return nil, fmt.Errorf("leaderboard: export: %w", err)
		}
		if out, err = sjson.SetBytes(out, prefix+"name", rec.Name); err != nil {
			return nil, fmt.Errorf("leaderboard: export: %w", err)
		}
		if out, err = sjson.SetBytes(out, prefix+"score", rec.Score); err != nil {
			return nil, fmt.Errorf("leaderboard: export: %w", err)
		}
	}
	return out, nil
}

// ImportJSON reads records from a document produced by ExportJSON.
// Entries with an invalid name are skipped.
func ImportJSON(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("leaderboard: import: malformed JSON")
	}
	res := gjson.GetBytes(data, "scores")
	if !res.Exists() || !res.IsArray() {
		return nil, fmt.Errorf("leaderboard: import: missing scores array")
	}

	out := make([]Record, 0, int(res.Get("#").Int()))
	res.ForEach(func(_, v gjson.Result) bool {
		rec := Record{
			Name:  v.Get("name").Str,
			Score: int(v.Get("score").Int()),
		}
		if ValidateName(rec.Name) == nil {
			out = append(out, rec)
		}
		return true
	})
	return out, nil
}
