package kb

// BestPractice is a curated recommendation with good/bad examples.
type BestPractice struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty"`
	Rationale   string   `json:"rationale,omitempty"`
	ExampleGood string   `json:"example_good,omitempty"`
	ExampleBad  string   `json:"example_bad,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Snippet is a copy-paste ready piece of code with its explanation.
type Snippet struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Language    string   `json:"language,omitempty"`
	UseCase     string   `json:"use_case,omitempty"`
	Code        string   `json:"code,omitempty"`
	Explanation string   `json:"explanation,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Step is one numbered action within a troubleshooting guide.
type Step struct {
	Step    int    `json:"step"`
	Action  string `json:"action"`
	Details string `json:"details,omitempty"`
}

// Guide is a troubleshooting entry: symptoms, causes and resolution steps.
type Guide struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Category string   `json:"category,omitempty"`
	Symptoms []string `json:"symptoms,omitempty"`
	Causes   []string `json:"causes,omitempty"`
	Steps    []Step   `json:"steps,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Tip is a short piece of advice for a feature area.
type Tip struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Tip          string   `json:"tip,omitempty"`
	WhyItMatters string   `json:"why_it_matters,omitempty"`
	Category     string   `json:"category,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

// ZoneInfo describes whether a feature is available in one governance zone.
type ZoneInfo struct {
	Available    bool     `json:"available"`
	Reason       string   `json:"reason,omitempty"`
	Requirements []string `json:"requirements,omitempty"`
}

// GovernanceFeature maps a platform feature to its zone availability rules.
// The feature slug acts as the record identifier.
type GovernanceFeature struct {
	Feature               string              `json:"feature"`
	DisplayName           string              `json:"display_name,omitempty"`
	MinimumZone           string              `json:"minimum_zone,omitempty"`
	Zones                 map[string]ZoneInfo `json:"zones,omitempty"`
	JustificationTemplate string              `json:"justification_template,omitempty"`
}

// Record is implemented by every collection entry so the generic lookup
// helpers can address records by identifier and search named fields.
type Record interface {
	Identifier() string
	// FieldStrings returns the string values held by the named field.
	// Scalar fields yield one element, list fields one element per entry,
	// and unknown or empty fields yield none.
	FieldStrings(field string) []string
}

func (p BestPractice) Identifier() string { return p.ID }

func (p BestPractice) FieldStrings(field string) []string {
	switch field {
	case "title":
		return scalar(p.Title)
	case "description":
		return scalar(p.Description)
	case "category":
		return scalar(p.Category)
	case "difficulty":
		return scalar(p.Difficulty)
	case "rationale":
		return scalar(p.Rationale)
	case "tags":
		return p.Tags
	}
	return nil
}

func (s Snippet) Identifier() string { return s.ID }

func (s Snippet) FieldStrings(field string) []string {
	switch field {
	case "title":
		return scalar(s.Title)
	case "description":
		return scalar(s.Description)
	case "language":
		return scalar(s.Language)
	case "use_case":
		return scalar(s.UseCase)
	case "explanation":
		return scalar(s.Explanation)
	case "tags":
		return s.Tags
	}
	return nil
}

func (g Guide) Identifier() string { return g.ID }

func (g Guide) FieldStrings(field string) []string {
	switch field {
	case "title":
		return scalar(g.Title)
	case "category":
		return scalar(g.Category)
	case "symptoms":
		return g.Symptoms
	case "causes":
		return g.Causes
	case "tags":
		return g.Tags
	}
	return nil
}

func (t Tip) Identifier() string { return t.ID }

func (t Tip) FieldStrings(field string) []string {
	switch field {
	case "title":
		return scalar(t.Title)
	case "tip":
		return scalar(t.Tip)
	case "why_it_matters":
		return scalar(t.WhyItMatters)
	case "category":
		return scalar(t.Category)
	case "tags":
		return t.Tags
	}
	return nil
}

func (f GovernanceFeature) Identifier() string { return f.Feature }

func (f GovernanceFeature) FieldStrings(field string) []string {
	switch field {
	case "feature":
		return scalar(f.Feature)
	case "display_name":
		return scalar(f.DisplayName)
	case "minimum_zone":
		return scalar(f.MinimumZone)
	}
	return nil
}

func scalar(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}
