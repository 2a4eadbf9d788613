// Package errors provides coded errors for locale file tooling.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// CodeInvalidArgument marks caller input that can never succeed, such as
	// an empty section key.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// File errors
	CodeNotFound Code = "NOT_FOUND"
	CodeParse    Code = "PARSE"
	CodeIO       Code = "IO"
)

// Stage names the step of a patch run that produced an error.
type Stage string

const (
	StageRead     Stage = "read"
	StageParse    Stage = "parse"
	StagePatch    Stage = "patch"
	StageWrite    Stage = "write"
	StageRollback Stage = "rollback"
)

// Metadata keys attached to file errors.
const (
	MetaPath   = "path"
	MetaLocale = "locale"
	MetaStage  = "stage"
)

// String returns the code as a string.
func (c Code) String() string {
	return string(c)
}
