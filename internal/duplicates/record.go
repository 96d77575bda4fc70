package duplicates

// SourceRecord is one row of the RPA inventory
type SourceRecord struct {
	Name        string
	Status      string
	Description string
	Unit        string
	SubUnit     string
}

// Empty reports whether the record has neither a name nor a description.
// Empty records are never compared.
func (r SourceRecord) Empty() bool {
	return r.Name == "" && r.Description == ""
}

// CandidateRecord is one row of the collaboration submissions worklist
type CandidateRecord struct {
	ID          string
	Name        string
	Phase       string
	Description string
	Division    string
}

// Empty reports whether the record has neither a name nor a description.
func (r CandidateRecord) Empty() bool {
	return r.Name == "" && r.Description == ""
}

// Party is one side of a reported pair, carrying the original field values
// for traceability. Fields a record shape does not have are left empty.
type Party struct {
	ID          string `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string `json:"name" yaml:"name"`
	Status      string `json:"status,omitempty" yaml:"status,omitempty"`
	Phase       string `json:"phase,omitempty" yaml:"phase,omitempty"`
	Division    string `json:"division,omitempty" yaml:"division,omitempty"`
	Description string `json:"description" yaml:"description"`
}

func sourceParty(r SourceRecord) Party {
	return Party{Name: r.Name, Status: r.Status, Description: r.Description}
}

func candidateParty(r CandidateRecord) Party {
	return Party{ID: r.ID, Name: r.Name, Phase: r.Phase, Division: r.Division, Description: r.Description}
}

// Pair is a reported duplicate. It is never mutated after the scanner emits it.
type Pair struct {
	From Party `json:"from" yaml:"from"`
	To   Party `json:"to" yaml:"to"`

	// Scores is flattened into the pair by both encoders
	Scores `yaml:",inline"`
}
