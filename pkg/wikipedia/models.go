package wikipedia

// PageAPIResponse is the top-level struct for a page extract query.
type PageAPIResponse struct {
	Query PageQuery `json:"query"`
}

// PageQuery contains the pages map from a page query, keyed by page id. A
// missing page is reported under a negative id with Missing set.
type PageQuery struct {
	Pages map[string]Page `json:"pages"`
}

// Page represents a single page with its plain text intro.
type Page struct {
	PageID  int     `json:"pageid"`
	Title   string  `json:"title"`
	Extract string  `json:"extract"`
	Missing *string `json:"missing,omitempty"`
}
