package ecfr

// TitleMeta is the per-title metadata returned by the versioner titles endpoint
type TitleMeta struct {
	Number          int    `json:"number"`
	Name            string `json:"name"`
	LatestAmendedOn string `json:"latest_amended_on"`
	LatestIssueDate string `json:"latest_issue_date"`
	UpToDateAsOf    string `json:"up_to_date_as_of"`
	Reserved        bool   `json:"reserved"`
}

// titlesResponse is the envelope of the titles endpoint
type titlesResponse struct {
	Titles []TitleMeta `json:"titles"`
	Meta   struct {
		Date string `json:"date"`
	} `json:"meta"`
}

// StructureNode is one node of the hierarchical table of contents for a title.
// Children are nested recursively down to sections and appendices.
type StructureNode struct {
	Type             string           `json:"type"`
	Identifier       string           `json:"identifier"`
	Label            string           `json:"label"`
	LabelLevel       string           `json:"label_level"`
	LabelDescription string           `json:"label_description"`
	Reserved         bool             `json:"reserved"`
	Children         []*StructureNode `json:"children"`
}
