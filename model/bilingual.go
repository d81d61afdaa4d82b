package model

// BilingualText holds a single piece of guidance in both languages.
// Stored as a JSONB column, e.g. crop care instructions.
type BilingualText struct {
	Hindi   string `json:"hindi"`
	English string `json:"english"`
}

// BilingualList holds a list of points in both languages. Used for disease
// symptoms, causes, treatment and prevention columns.
type BilingualList struct {
	Hindi   []string `json:"hindi"`
	English []string `json:"english"`
}
