package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldRecordID   = "record_id"
	FieldRecordKind = "record_kind"
	FieldFormat     = "format"
	FieldFilename   = "filename"
	FieldFilter     = "filter"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentHTTP     = "http"
	ComponentStore    = "store"
	ComponentEditor   = "editor"
	ComponentExport   = "export"
	ComponentAMQP     = "amqp"
	ComponentDelivery = "delivery"
)

// Operations defines standard operation names
const (
	OpCreate    = "create"
	OpUpdate    = "update"
	OpList      = "list"
	OpCalculate = "calculate"
	OpCopy      = "copy"
	OpExport    = "export"
	OpValidate  = "validate"
	OpStartup   = "startup"
	OpShutdown  = "shutdown"
)

// Record kinds as they appear in log lines and export rows.
const (
	KindWage   = "calculation"
	KindManual = "manual"
)
