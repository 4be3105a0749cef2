package models

// Analysis is the output of the text analysis pipeline for one post. All
// fields are derived from the post content alone; the user-supplied
// category hint, if any, is never consulted.
type Analysis struct {
	Category    string   `json:"category"`
	Summary     string   `json:"summary"`
	Keywords    []string `json:"keywords"`
	Hashtags    []string `json:"hashtags"`
	Flagged     bool     `json:"flagged"`
	FlagReasons []string `json:"flag_reasons"`
}

// Moderation is the result of the content moderation check. Flagging is
// advisory: a flagged post is still created and stored.
type Moderation struct {
	Flagged bool     `json:"flagged"`
	Reasons []string `json:"reasons"`
}
