package recruit

import (
	"math"
	"sort"
	"strings"
)

// visaSafeStatuses are candidate visa statuses that satisfy a job requiring
// no sponsorship from the employer side.
var visaSafeStatuses = map[string]bool{
	"no_sponsorship": true,
	"citizen":        true,
	"pr":             true,
	"settled":        true,
}

// educationScores maps a normalized education level to its ranking sub-score.
// Anything unrecognized scores like "unknown".
var educationScores = map[string]float64{
	"phd":       1.0,
	"masters":   0.8,
	"bachelors": 0.6,
	"diploma":   0.4,
	"unknown":   0.2,
}

const defaultEducationScore = 0.2

// EligibilityResult is the screening verdict for a single candidate.
type EligibilityResult struct {
	CandidateID string `json:"candidate_id"`
	Eligible    bool   `json:"eligible"`
	Reason      string `json:"reason"`
}

// FilterEligibility screens the given candidates against the job's
// experience, skill and visa requirements. Candidate ids that do not resolve
// are silently omitted from the output.
func FilterEligibility(snap *Snapshot, jobID string, candidateIDs []string) ([]EligibilityResult, error) {
	job := snap.Job(jobID)
	if job == nil {
		return nil, Errorf(ErrNotFound, "job not found: %s", NormalizeText(jobID))
	}

	required := skillSet(job.RequiredSkills)

	out := make([]EligibilityResult, 0, len(candidateIDs))
	for _, raw := range candidateIDs {
		cid := NormalizeText(raw)
		cand := snap.Candidates[cid]
		if cand == nil {
			continue
		}

		expOK := cand.YearsExperience >= job.MinExperienceYears
		skillsOK := isSubset(required, skillSet(cand.Skills))
		visaOK := true
		if job.VisaRequired {
			visaOK = visaSafeStatuses[NormalizeText(cand.VisaStatus)]
		}

		if expOK && skillsOK && visaOK {
			out = append(out, EligibilityResult{CandidateID: cid, Eligible: true, Reason: "meets_all"})
			continue
		}

		// Reason codes keep a fixed order regardless of predicate order.
		reasons := make([]string, 0, 3)
		if !expOK {
			reasons = append(reasons, "insufficient_experience")
		}
		if !skillsOK {
			reasons = append(reasons, "missing_skills")
		}
		if !visaOK {
			reasons = append(reasons, "visa_mismatch")
		}
		out = append(out, EligibilityResult{CandidateID: cid, Eligible: false, Reason: strings.Join(reasons, ",")})
	}

	return out, nil
}

// RankWeights weight the three ranking sub-scores. They are applied as given:
// weights that do not sum to 1 produce totals outside [0, 1] on purpose.
type RankWeights struct {
	Skills     float64 `json:"skills" mapstructure:"skills"`
	Experience float64 `json:"experience" mapstructure:"experience"`
	Education  float64 `json:"education" mapstructure:"education"`
}

// DefaultRankWeights returns the standard skills/experience/education split.
func DefaultRankWeights() RankWeights {
	return RankWeights{Skills: 0.5, Experience: 0.3, Education: 0.2}
}

// ScoreBreakdown holds the per-dimension sub-scores, rounded to 4 decimals.
type ScoreBreakdown struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
}

// RankResult is a candidate's total suitability score for a job.
type RankResult struct {
	CandidateID string         `json:"candidate_id"`
	Score       float64        `json:"score"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}

// RankCandidates scores the given candidates against the job and returns them
// sorted by total score descending. The sort is stable: tied candidates keep
// their input order. Unresolved candidate ids are silently omitted.
func RankCandidates(snap *Snapshot, jobID string, candidateIDs []string, weights *RankWeights) ([]RankResult, error) {
	job := snap.Job(jobID)
	if job == nil {
		return nil, Errorf(ErrNotFound, "job not found: %s", NormalizeText(jobID))
	}

	w := DefaultRankWeights()
	if weights != nil {
		w = *weights
	}

	required := skillSet(job.RequiredSkills)

	out := make([]RankResult, 0, len(candidateIDs))
	for _, raw := range candidateIDs {
		cid := NormalizeText(raw)
		cand := snap.Candidates[cid]
		if cand == nil {
			continue
		}

		skillScore := 1.0
		if len(required) > 0 {
			skillScore = float64(intersectionSize(required, skillSet(cand.Skills))) / float64(len(required))
		}

		// Linear ramp capped at 10 years.
		expScore := float64(cand.YearsExperience) / 10.0
		expScore = math.Min(math.Max(expScore, 0), 1)

		eduScore, ok := educationScores[NormalizeText(cand.EducationLevel)]
		if !ok {
			eduScore = defaultEducationScore
		}

		total := w.Skills*skillScore + w.Experience*expScore + w.Education*eduScore

		out = append(out, RankResult{
			CandidateID: cid,
			Score:       total,
			Breakdown: ScoreBreakdown{
				Skills:     round4(skillScore),
				Experience: round4(expScore),
				Education:  round4(eduScore),
			},
		})
	}

	// Ordering compares the raw totals; rounding is presentation only and
	// must not collapse distinct scores into a tie.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	for i := range out {
		out[i].Score = round4(out[i].Score)
	}
	return out, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func skillSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		if t := NormalizeText(s); t != "" {
			set[t] = true
		}
	}
	return set
}

func isSubset(sub, super map[string]bool) bool {
	for s := range sub {
		if !super[s] {
			return false
		}
	}
	return true
}

func intersectionSize(a, b map[string]bool) int {
	n := 0
	for s := range a {
		if b[s] {
			n++
		}
	}
	return n
}
