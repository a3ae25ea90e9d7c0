package types

type (
	// PathFilterConfig contains configuration for the entry filter.
	PathFilterConfig struct {
		IgnoredPatterns []string `json:"ignoredPatterns"`
	}
)
