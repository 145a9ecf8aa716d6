package models

// MessageCell represents one greeting-card message on a message page
// FontSize is expressed in em
type MessageCell struct {
	Text     string  `json:"text"`
	FontSize float64 `json:"fontSize"`
}

// LabelCell represents one address label
type LabelCell struct {
	Text  string   `json:"text"`
	Lines []string `json:"lines"`
}

// MessagePage represents a single printed page of message cells
type MessagePage struct {
	Number int           `json:"number"`
	Cells  []MessageCell `json:"cells"`
}

// LabelPage represents a single printed page of address labels
type LabelPage struct {
	Number int         `json:"number"`
	Cells  []LabelCell `json:"cells"`
}

// PrintSummary represents the outcome of one print run
type PrintSummary struct {
	RowsRead       int            `json:"rowsRead"`
	OrdersByOrigin map[Origin]int `json:"ordersByOrigin"`
	Selected       int            `json:"selected"`
	Entries        int            `json:"entries"`
	MessageCount   int            `json:"messageCount"`
	MessagePages   int            `json:"messagePages"`
	LabelPages     int            `json:"labelPages"`
	MessagesPath   string         `json:"messagesPath,omitempty"`
	LabelsPath     string         `json:"labelsPath,omitempty"`
	Uploaded       []string       `json:"uploaded,omitempty"`
}

// NothingToPrint reports whether the run ended without any entries
func (s PrintSummary) NothingToPrint() bool {
	return s.Entries == 0
}
