package recruit

// Snapshot is the full in-memory state of all four collections, keyed by
// normalized identifier. It is loaded whole, mutated in memory by exactly one
// operation and saved whole; the store never writes partial collections.
type Snapshot struct {
	Jobs         map[string]*JobPosting      `json:"jobs"`
	Candidates   map[string]*CandidateProfile `json:"candidates"`
	Applications map[string]*Application     `json:"applications"`
	Interviews   map[string]*Interview       `json:"interviews"`
}

// NewSnapshot returns an empty snapshot with all collections allocated.
func NewSnapshot() *Snapshot {
	s := &Snapshot{}
	s.Init()
	return s
}

// Init allocates any nil collection. Called after decoding a stored document
// so lookups never hit a nil map.
func (s *Snapshot) Init() {
	if s.Jobs == nil {
		s.Jobs = make(map[string]*JobPosting)
	}
	if s.Candidates == nil {
		s.Candidates = make(map[string]*CandidateProfile)
	}
	if s.Applications == nil {
		s.Applications = make(map[string]*Application)
	}
	if s.Interviews == nil {
		s.Interviews = make(map[string]*Interview)
	}
}

// Job resolves a job by raw identifier, normalizing it first.
func (s *Snapshot) Job(id string) *JobPosting {
	return s.Jobs[NormalizeText(id)]
}

func (s *Snapshot) Candidate(id string) *CandidateProfile {
	return s.Candidates[NormalizeText(id)]
}

func (s *Snapshot) Application(id string) *Application {
	return s.Applications[NormalizeText(id)]
}

func (s *Snapshot) Interview(id string) *Interview {
	return s.Interviews[NormalizeText(id)]
}
