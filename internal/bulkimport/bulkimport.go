// Package bulkimport merges externally produced records into a snapshot.
// The merge is insert-if-absent: items whose normalized identifier already
// exists are skipped without error, and nothing that is already stored is
// ever overwritten.
package bulkimport

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"

	"hireflow/internal/recruit"
)

// SectionReport summarizes the outcome for one collection.
type SectionReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// Report covers all four sections, in document order.
type Report struct {
	Jobs         SectionReport `json:"jobs"`
	Candidates   SectionReport `json:"candidates"`
	Applications SectionReport `json:"applications"`
	Interviews   SectionReport `json:"interviews"`
}

// FromFile reads a bulk JSON document and merges it into the snapshot.
// File and parse failures are validation errors; per-item problems never
// abort the merge and show up in the report instead.
func FromFile(path string, snap *recruit.Snapshot) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, recruit.Errorf(recruit.ErrValidation, "bulk file not readable: %v", err)
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, recruit.Errorf(recruit.ErrValidation, "bulk file is not a JSON object: %v", err)
	}

	return Merge(snap, payload)
}

// Merge inserts the payload's sections into the snapshot and returns the
// per-section report.
func Merge(snap *recruit.Snapshot, payload map[string]any) (*Report, error) {
	report := &Report{
		Jobs:         SectionReport{Errors: []string{}},
		Candidates:   SectionReport{Errors: []string{}},
		Applications: SectionReport{Errors: []string{}},
		Interviews:   SectionReport{Errors: []string{}},
	}

	sections := []struct {
		name    string
		idField string
		section *SectionReport
		exists  func(id string) bool
		insert  func(id string, item map[string]any) error
	}{
		{
			name: "jobs", idField: "job_id", section: &report.Jobs,
			exists: func(id string) bool { _, ok := snap.Jobs[id]; return ok },
			insert: func(id string, item map[string]any) error {
				var job recruit.JobPosting
				if err := decodeItem(item, &job); err != nil {
					return err
				}
				job.ID = id
				snap.Jobs[id] = &job
				return nil
			},
		},
		{
			name: "candidates", idField: "candidate_id", section: &report.Candidates,
			exists: func(id string) bool { _, ok := snap.Candidates[id]; return ok },
			insert: func(id string, item map[string]any) error {
				var candidate recruit.CandidateProfile
				if err := decodeItem(item, &candidate); err != nil {
					return err
				}
				candidate.ID = id
				snap.Candidates[id] = &candidate
				return nil
			},
		},
		{
			name: "applications", idField: "application_id", section: &report.Applications,
			exists: func(id string) bool { _, ok := snap.Applications[id]; return ok },
			insert: func(id string, item map[string]any) error {
				var app recruit.Application
				if err := decodeItem(item, &app); err != nil {
					return err
				}
				app.ID = id
				snap.Applications[id] = &app
				return nil
			},
		},
		{
			name: "interviews", idField: "interview_id", section: &report.Interviews,
			exists: func(id string) bool { _, ok := snap.Interviews[id]; return ok },
			insert: func(id string, item map[string]any) error {
				var interview recruit.Interview
				if err := decodeItem(item, &interview); err != nil {
					return err
				}
				interview.ID = id
				snap.Interviews[id] = &interview
				return nil
			},
		},
	}

	for _, sec := range sections {
		raw, ok := payload[sec.name]
		if !ok || raw == nil {
			continue
		}
		items, ok := raw.([]any)
		if !ok {
			return nil, recruit.Errorf(recruit.ErrValidation, "%q must be a list", sec.name)
		}

		for idx, entry := range items {
			item, ok := entry.(map[string]any)
			if !ok {
				sec.section.Skipped++
				sec.section.Errors = append(sec.section.Errors, fmt.Sprintf("%s[%d]: not an object", sec.name, idx))
				continue
			}

			id := recruit.NormalizeText(idString(item[sec.idField]))
			if id == "" {
				sec.section.Skipped++
				sec.section.Errors = append(sec.section.Errors, fmt.Sprintf("%s[%d]: missing %s", sec.name, idx, sec.idField))
				continue
			}

			if sec.exists(id) {
				sec.section.Skipped++
				continue
			}

			if err := sec.insert(id, item); err != nil {
				sec.section.Skipped++
				sec.section.Errors = append(sec.section.Errors, fmt.Sprintf("%s[%d]: %v", sec.name, idx, err))
				continue
			}
			sec.section.Imported++
		}
	}

	return report, nil
}

// idString renders an identifier value to text. Exported documents sometimes
// carry numeric ids; those import under their decimal form rather than being
// rejected as missing.
func idString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	default:
		return ""
	}
}

// decodeItem maps a loose JSON object onto a typed record. Weak typing keeps
// the merge permissive: numbers arrive as float64, booleans sometimes as
// strings. Unknown fields are ignored rather than rejected.
func decodeItem(item map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(time.RFC3339),
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(item); err != nil {
		return fmt.Errorf("decode: %s", strings.TrimSpace(err.Error()))
	}
	return nil
}
