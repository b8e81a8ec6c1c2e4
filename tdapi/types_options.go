package tdapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

//----------------------------------------------------------------------
// Options & Logging
//----------------------------------------------------------------------

// Represents the value of an option
//
// @category Options
type OptionValue interface {
	Object
	isOptionValue()
}

// Represents a boolean option
//
// @class OptionValue
// @category Options
type OptionValueBoolean struct {
	// The value of the option
	Value bool `json:"value"`
}

// Represents an unknown option or an option which has a default value
//
// @class OptionValue
// @category Options
type OptionValueEmpty struct{}

// Represents an integer option
//
// @class OptionValue
// @category Options
type OptionValueInteger struct {
	// The value of the option
	Value int64 `json:"value,string"`
}

// Represents a string option
//
// @class OptionValue
// @category Options
type OptionValueString struct {
	// The value of the option
	Value string `json:"value"`
}

// Returns the value of an option by its name. (Check the list of available options on
// https://core.telegram.org/tdlib/options.) Can be called before authorization. Can be
// called synchronously for options "version" and "commit_hash"
//
// @category Options
// @returns OptionValue
// @sync
type GetOption struct {
	// The name of the option
	Name string `json:"name"`
}

func (p GetOption) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
	)
}

// Sets the value of an option. (Check the list of available options on
// https://core.telegram.org/tdlib/options.) Only writable options can be set. Can be
// called before authorization
//
// @category Options
// @returns Ok
type SetOption struct {
	// The name of the option
	Name string `json:"name"`

	// The new value of the option; pass null to reset option value to a default value
	// @optional
	Value OptionValue `json:"value,omitempty"`
}

func (p SetOption) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
	)
}

// Describes a stream to which TDLib internal log is written
//
// @category Options
type LogStream interface {
	Object
	isLogStream()
}

// The log is written to stderr or an OS specific log
//
// @class LogStream
// @category Options
type LogStreamDefault struct{}

// The log is written to a file
//
// @class LogStream
// @category Options
type LogStreamFile struct {
	// Path to the file to where the internal TDLib log will be written
	Path string `json:"path"`

	// The maximum size of the file to where the internal TDLib log is written before the file will automatically be rotated, in bytes
	MaxFileSize int64 `json:"max_file_size"`

	// Pass true to additionally redirect stderr to the log file. Ignored on Windows
	RedirectStderr bool `json:"redirect_stderr"`
}

// The log is written nowhere
//
// @class LogStream
// @category Options
type LogStreamEmpty struct{}

// Contains a TDLib internal log verbosity level
//
// @category Options
type LogVerbosityLevel struct {
	// Log verbosity level
	VerbosityLevel int32 `json:"verbosity_level"`
}

// Contains a list of available TDLib internal log tags
//
// @category Options
type LogTags struct {
	// List of log tags
	Tags []string `json:"tags"`
}

// Sets new log stream for internal logging of TDLib. Can be called synchronously
//
// @category Options
// @returns Ok
// @sync
type SetLogStream struct {
	// New log stream
	LogStream LogStream `json:"log_stream"`
}

func (p SetLogStream) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.LogStream, validation.Required),
	)
}

// Returns information about currently used log stream for internal logging of TDLib. Can
// be called synchronously
//
// @category Options
// @returns LogStream
// @sync
type GetLogStream struct{}

func (p GetLogStream) Validate() error {
	return nil
}

// Sets the verbosity level of the internal logging of TDLib. Can be called synchronously
//
// @category Options
// @returns Ok
// @sync
type SetLogVerbosityLevel struct {
	// New value of the verbosity level for logging. Value 0 corresponds to fatal errors, value 1 corresponds to errors, value 2 corresponds to warnings and debug warnings, value 3 corresponds to informational, value 4 corresponds to debug, value 5 corresponds to verbose debug, value greater than 5 and up to 1023 can be used to enable even more logging
	NewVerbosityLevel int32 `json:"new_verbosity_level"`
}

func (p SetLogVerbosityLevel) Validate() error {
	return nil
}

// Returns current verbosity level of the internal logging of TDLib. Can be called
// synchronously
//
// @category Options
// @returns LogVerbosityLevel
// @sync
type GetLogVerbosityLevel struct{}

func (p GetLogVerbosityLevel) Validate() error {
	return nil
}

// Returns list of available TDLib internal log tags, for example, ["actor", "binlog",
// "connections", "notifications", "proxy"]. Can be called synchronously
//
// @category Options
// @returns LogTags
// @sync
type GetLogTags struct{}

func (p GetLogTags) Validate() error {
	return nil
}

// Sets the verbosity level for a specified TDLib internal log tag. Can be called
// synchronously
//
// @category Options
// @returns Ok
// @sync
type SetLogTagVerbosityLevel struct {
	// Logging tag to change verbosity level
	Tag string `json:"tag"`

	// New verbosity level; 1-1024
	NewVerbosityLevel int32 `json:"new_verbosity_level"`
}

func (p SetLogTagVerbosityLevel) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Tag, validation.Required),
	)
}

// Returns current verbosity level for a specified TDLib internal log tag. Can be called
// synchronously
//
// @category Options
// @returns LogVerbosityLevel
// @sync
type GetLogTagVerbosityLevel struct {
	// Logging tag to change verbosity level
	Tag string `json:"tag"`
}

func (p GetLogTagVerbosityLevel) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Tag, validation.Required),
	)
}

// Adds a message to TDLib internal log. Can be called synchronously
//
// @category Options
// @returns Ok
// @sync
type AddLogMessage struct {
	// The minimum verbosity level needed for the message to be logged; 0-1023
	VerbosityLevel int32 `json:"verbosity_level"`

	// Text of a message to log
	Text string `json:"text"`
}

func (p AddLogMessage) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Text, validation.Required),
	)
}
