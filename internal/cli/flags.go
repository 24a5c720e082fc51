package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile       string
	TargetLang    string
	ExcludeFile   string
	CheckSpelling bool
	ListModels    bool
	DryRun        bool

	// API flags
	Model   string
	APIKey  string
	BaseURL string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		Model: "gpt-4o-mini",
	}
}
