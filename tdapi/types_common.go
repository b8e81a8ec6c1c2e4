package tdapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

//----------------------------------------------------------------------
// Common
//----------------------------------------------------------------------

// An object of this type can be returned on every function call, in case of an error
//
// @category Common
type Error struct {
	// Error code; subject to future changes. If the error code is 406, the error message must not be processed in any way and must not be displayed to the user
	Code int32 `json:"code"`

	// Error message; subject to future changes
	Message string `json:"message"`
}

// An object of this type is returned on a successful function call for certain functions
//
// @category Common
type Ok struct{}

// Contains some text
//
// @category Common
type Text struct {
	// Text
	Text string `json:"text"`
}

// Contains a value representing a number of seconds
//
// @category Common
type Seconds struct {
	// Number of seconds
	Seconds float64 `json:"seconds"`
}

// Represents a part of the text which must be formatted differently
//
// @category Common
type TextEntityType interface {
	Object
	isTextEntityType()
}

// A mention of a user, a supergroup, or a channel by their username
//
// @class TextEntityType
// @category Common
type TextEntityTypeMention struct{}

// A hashtag text, beginning with "#"
//
// @class TextEntityType
// @category Common
type TextEntityTypeHashtag struct{}

// An HTTP URL
//
// @class TextEntityType
// @category Common
type TextEntityTypeUrl struct{}

// A bold text
//
// @class TextEntityType
// @category Common
type TextEntityTypeBold struct{}

// An italic text
//
// @class TextEntityType
// @category Common
type TextEntityTypeItalic struct{}

// Text that must be formatted as if inside a code HTML tag
//
// @class TextEntityType
// @category Common
type TextEntityTypeCode struct{}

// Text that must be formatted as if inside a pre HTML tag
//
// @class TextEntityType
// @category Common
type TextEntityTypePre struct{}

// Text that must be formatted as if inside pre, and code HTML tags
//
// @class TextEntityType
// @category Common
type TextEntityTypePreCode struct {
	// Programming language of the code; as defined by the sender
	Language string `json:"language"`
}

// A text description shown instead of a raw URL
//
// @class TextEntityType
// @category Common
type TextEntityTypeTextUrl struct {
	// HTTP or tg:// URL to be opened when the link is clicked
	URL string `json:"url"`
}

// A text shows instead of a raw mention of the user (e.g., when the user has no username)
//
// @class TextEntityType
// @category Common
type TextEntityTypeMentionName struct {
	// Identifier of the mentioned user
	UserID int64 `json:"user_id"`
}

// Represents a part of the text that needs to be formatted in some unusual way
//
// @category Common
type TextEntity struct {
	// Offset of the entity, in UTF-16 code units
	Offset int32 `json:"offset"`

	// Length of the entity, in UTF-16 code units
	Length int32 `json:"length"`

	// Type of the entity
	Type TextEntityType `json:"type"`
}

// Contains a list of text entities
//
// @category Common
type TextEntities struct {
	// List of text entities
	Entities []*TextEntity `json:"entities"`
}

// A text with some entities
//
// @category Common
type FormattedText struct {
	// The text
	Text string `json:"text"`

	// Entities contained in the text. Entities can be nested, but must not mutually intersect with each other
	Entities []*TextEntity `json:"entities"`
}

// Describes the way the text needs to be parsed for text entities
//
// @category Common
type TextParseMode interface {
	Object
	isTextParseMode()
}

// The text uses Markdown-style formatting
//
// @class TextParseMode
// @category Common
type TextParseModeMarkdown struct {
	// Version of the parser: 0 or 1 - Telegram Bot API "Markdown" parse mode, 2 - Telegram Bot API "MarkdownV2" parse mode
	Version int32 `json:"version"`
}

// The text uses HTML-style formatting. The same as Telegram Bot API "HTML" parse mode
//
// @class TextParseMode
// @category Common
type TextParseModeHTML struct{}

// Returns all entities (mentions, hashtags, cashtags, bot commands, bank card numbers,
// URLs, and email addresses) found in the text. Can be called synchronously
//
// @category Common
// @returns TextEntities
// @sync
type GetTextEntities struct {
	// The text in which to look for entities
	Text string `json:"text"`
}

func (p GetTextEntities) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Text, validation.Required),
	)
}

// Parses Bold, Italic, Underline, Strikethrough, Spoiler, Code, Pre, PreCode, TextUrl and
// MentionName entities from a marked-up text. Can be called synchronously
//
// @category Common
// @returns FormattedText
// @sync
type ParseTextEntities struct {
	// The text to parse
	Text string `json:"text"`

	// Text parse mode
	ParseMode TextParseMode `json:"parse_mode"`
}

func (p ParseTextEntities) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Text, validation.Required),
		validation.Field(&p.ParseMode, validation.Required),
	)
}

// Parses Markdown entities in a human-friendly format, ignoring markup errors. Can be
// called synchronously
//
// @category Common
// @returns FormattedText
// @sync
type ParseMarkdown struct {
	// The text to parse. For example, "__italic__ ~~strikethrough~~ ||spoiler|| **bold** `code` ```pre``` __[italic__ text_url](telegram.org) __italic**bold italic__bold**"
	Text *FormattedText `json:"text"`
}

func (p ParseMarkdown) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Text, validation.Required),
	)
}

// Replaces text entities with Markdown formatting in a human-friendly format. Entities
// that can't be represented in Markdown unambiguously are kept as is. Can be called
// synchronously
//
// @category Common
// @returns FormattedText
// @sync
type GetMarkdownText struct {
	// The text
	Text *FormattedText `json:"text"`
}

func (p GetMarkdownText) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Text, validation.Required),
	)
}

// Uses the current IP address to find the current country. Returns two-letter ISO 3166-1
// alpha-2 country code. Can be called before authorization
//
// @category Common
// @returns Text
type GetCountryCode struct{}

func (p GetCountryCode) Validate() error {
	return nil
}

// Does nothing; for testing only. This is an offline method. Can be called before
// authorization
//
// @category Common
// @returns Ok
type TestCallEmpty struct{}

func (p TestCallEmpty) Validate() error {
	return nil
}

// A simple object containing a number; for testing only
//
// @category Common
type TestInt struct {
	// Number
	Value int32 `json:"value"`
}

// A simple object containing a string; for testing only
//
// @category Common
type TestString struct {
	// String
	Value string `json:"value"`
}

// A simple object containing a sequence of bytes; for testing only
//
// @category Common
type TestBytes struct {
	// Bytes
	Value []byte `json:"value"`
}

// A simple object containing a vector of numbers; for testing only
//
// @category Common
type TestVectorInt struct {
	// Vector of numbers
	Value []int32 `json:"value"`
}

// Returns the received string; for testing only. This is an offline method. Can be called
// before authorization
//
// @category Common
// @returns TestString
type TestCallString struct {
	// String to return
	X string `json:"x"`
}

func (p TestCallString) Validate() error {
	return nil
}

// Returns the received bytes; for testing only. This is an offline method. Can be called
// before authorization
//
// @category Common
// @returns TestBytes
type TestCallBytes struct {
	// Bytes to return
	X []byte `json:"x"`
}

func (p TestCallBytes) Validate() error {
	return nil
}

// Returns the received vector of numbers; for testing only. This is an offline method. Can
// be called before authorization
//
// @category Common
// @returns TestVectorInt
type TestCallVectorInt struct {
	// Vector of numbers to return
	X []int32 `json:"x"`
}

func (p TestCallVectorInt) Validate() error {
	return nil
}

// Returns the squared received number; for testing only. This is an offline method. Can be
// called before authorization
//
// @category Common
// @returns TestInt
type TestSquareInt struct {
	// Number to square
	X int32 `json:"x"`
}

func (p TestSquareInt) Validate() error {
	return nil
}

// Sends a simple network request to the Telegram servers; for testing only. Can be called
// before authorization
//
// @category Common
// @returns Ok
type TestNetwork struct{}

func (p TestNetwork) Validate() error {
	return nil
}

// Returns the specified error and ensures that the Error object is used; for testing only.
// Can be called synchronously
//
// @category Common
// @returns Error
// @sync
type TestReturnError struct {
	// The error to be returned
	// @optional
	Error *Error `json:"error,omitempty"`
}

func (p TestReturnError) Validate() error {
	return nil
}
