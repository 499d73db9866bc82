package domain

// JSON field names of the merged document, in serialization order.
const (
	KeyProgram      = "program"
	KeyProgramInput = "program_input"
	KeyLayout       = "layout"
)
