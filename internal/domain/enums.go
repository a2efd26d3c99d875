package domain

// MenuFormat identifies the declared (or sniffed) format of an uploaded menu document.
type MenuFormat string

const (
	FormatTabular    MenuFormat = "tabular"
	FormatPDF        MenuFormat = "pdf"
	FormatWord       MenuFormat = "word"
	FormatDelimited  MenuFormat = "delimited"
	FormatStructured MenuFormat = "structured"
)

// ValidFormats lists the formats the pipeline can decode.
var ValidFormats = map[MenuFormat]bool{
	FormatTabular:    true,
	FormatPDF:        true,
	FormatWord:       true,
	FormatDelimited:  true,
	FormatStructured: true,
}

// FormatForExtension maps file extensions (without dot) to a MenuFormat.
var FormatForExtension = map[string]MenuFormat{
	"xlsx": FormatTabular,
	"xlsm": FormatTabular,
	"pdf":  FormatPDF,
	"docx": FormatWord,
	"csv":  FormatDelimited,
	"tsv":  FormatDelimited,
	"txt":  FormatDelimited,
	"json": FormatStructured,
}

// ItemType classifies a menu item into one of the three supported groups.
type ItemType string

const (
	ItemTypeFood     ItemType = "food"
	ItemTypeBeverage ItemType = "beverage"
	ItemTypeWine     ItemType = "wine"
)

// ConflictClass is the reconciler's verdict for one parsed candidate
// against the existing menu.
type ConflictClass string

const (
	ConflictNew             ConflictClass = "new"
	ConflictExactDuplicate  ConflictClass = "exact_duplicate"
	ConflictLikelyDuplicate ConflictClass = "likely_duplicate"
	ConflictFieldConflict   ConflictClass = "field_conflict"
)

// ResolutionAction is the action applied to one candidate at commit time.
type ResolutionAction string

const (
	ActionCreate ResolutionAction = "create"
	ActionSkip   ResolutionAction = "skip"
	ActionUpdate ResolutionAction = "update"
	ActionManual ResolutionAction = "manual"
)

// ValidPlanActions lists the actions a resolution plan may carry at commit
// time. Manual is deliberately absent: it must have been resolved earlier.
var ValidPlanActions = map[ResolutionAction]bool{
	ActionCreate: true,
	ActionSkip:   true,
	ActionUpdate: true,
}

// JobStatus is the lifecycle state of a background import job.
// Completed and failed are terminal and immutable.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)
