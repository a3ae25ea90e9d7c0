package types

type (
	// SearchParams contains parameters for a directory search.
	SearchParams struct {
		Directory string `json:"directory"`
		Term      string `json:"term"`
	}

	// SearchResult describes the outcome of a directory search.
	SearchResult struct {
		Found        bool     `json:"found"`
		MatchedPath  string   `json:"matchedPath,omitempty"`
		FilesChecked int      `json:"filesChecked"`
		Skipped      []string `json:"skipped,omitempty"`
	}
)
