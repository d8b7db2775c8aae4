package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// ViewTab represents the section shown below the profile card.
	ViewTab string

	// EventKind is the type tag of a public event.
	EventKind string

	// ReportSection selects which part of a report gets written.
	ReportSection string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	YAMLOut    OutputMode = "yaml"
)

// All view tabs supported.
const (
	ReposTab    ViewTab = "repos" // default
	ActivityTab ViewTab = "activity"
)

// Event kinds the tool knows about. Only PushEvent carries commits.
const (
	PushEvent   EventKind = "PushEvent"
	CreateEvent EventKind = "CreateEvent"
	WatchEvent  EventKind = "WatchEvent"
	ForkEvent   EventKind = "ForkEvent"
)

// All report sections supported.
const (
	FullSection     ReportSection = "full"
	ReposSection    ReportSection = "repos"
	ActivitySection ReportSection = "activity"
	CommitsSection  ReportSection = "commits"
)

// Upstream locations.
const (
	DefaultAPIURL = "https://api.github.com"
	WebBaseURL    = "https://github.com"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
	YAMLOut:    {},
}

// ValidViewTabs lists all valid view tabs.
var ValidViewTabs = map[ViewTab]struct{}{
	ReposTab:    {},
	ActivityTab: {},
}
