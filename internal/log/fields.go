package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldRunID     = "run_id"
	FieldSceneID   = "scene_id"
	FieldSceneIdx  = "scene_index"
	FieldOverlay   = "overlay"
	FieldTemplate  = "template"
	FieldSegment   = "segment"
	FieldComponent = "component"

	// Timeline fields
	FieldFrame       = "frame"
	FieldTotalFrames = "total_frames"
	FieldFPS         = "fps"
	FieldResolution  = "resolution"
	FieldWorkers     = "workers"

	// Path fields
	FieldPath   = "path"
	FieldSource = "source"
)
