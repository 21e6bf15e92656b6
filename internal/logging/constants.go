package logging

// Standardized field names for structured logging.
// These constants ensure consistency across the application's log output,
// making logs easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldEngine     = "engine"
	FieldSource     = "source"
	FieldConfidence = "confidence"
	FieldField      = "field"
	FieldCount      = "count"
	FieldReason     = "reason"
	FieldInputDir   = "input_dir"
	FieldOutputFile = "output_file"
)
