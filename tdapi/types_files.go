package tdapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

//----------------------------------------------------------------------
// Files
//----------------------------------------------------------------------

// Represents a local file
//
// @category Files
type LocalFile struct {
	// Local path to the locally available file part; may be empty
	Path string `json:"path"`

	// True, if it is possible to download or generate the file
	CanBeDownloaded bool `json:"can_be_downloaded"`

	// True, if the file can be deleted
	CanBeDeleted bool `json:"can_be_deleted"`

	// True, if the file is currently being downloaded (or a local copy is being generated by some other means)
	IsDownloadingActive bool `json:"is_downloading_active"`

	// True, if the local copy is fully available
	IsDownloadingCompleted bool `json:"is_downloading_completed"`

	// Download will be started from this offset. downloaded_prefix_size is calculated from this offset
	DownloadOffset int64 `json:"download_offset"`

	// If is_downloading_completed is false, then only some prefix of the file starting from download_offset is ready to be read. downloaded_prefix_size is the size of that prefix in bytes
	DownloadedPrefixSize int64 `json:"downloaded_prefix_size"`

	// Total downloaded file size, in bytes. Can be used only for calculating download progress. The actual file size may be bigger, and some parts of it may contain garbage
	DownloadedSize int64 `json:"downloaded_size"`
}

// Represents a remote file
//
// @category Files
type RemoteFile struct {
	// Remote file identifier; may be empty. Can be used by the current user across application restarts or even from other devices
	ID string `json:"id"`

	// Unique file identifier; may be empty if unknown. The unique file identifier which is the same for the same file even for different users and is persistent over time
	UniqueID string `json:"unique_id"`

	// True, if the file is currently being uploaded (or a remote copy is being generated by some other means)
	IsUploadingActive bool `json:"is_uploading_active"`

	// True, if a remote copy is fully available
	IsUploadingCompleted bool `json:"is_uploading_completed"`

	// Size of the remote available part of the file, in bytes; 0 if unknown
	UploadedSize int64 `json:"uploaded_size"`
}

// Represents a file
//
// @category Files
type File struct {
	// Unique file identifier
	ID int32 `json:"id"`

	// File size, in bytes; 0 if unknown
	Size int64 `json:"size"`

	// Approximate file size in bytes in case the exact file size is unknown. Can be used to show download/upload progress
	ExpectedSize int64 `json:"expected_size"`

	// Information about the local copy of the file
	Local *LocalFile `json:"local"`

	// Information about the remote copy of the file
	Remote *RemoteFile `json:"remote"`
}

// Points to a file
//
// @category Files
type InputFile interface {
	Object
	isInputFile()
}

// A file defined by its unique identifier
//
// @class InputFile
// @category Files
type InputFileId struct {
	// Unique file identifier
	ID int32 `json:"id"`
}

// A file defined by its remote identifier. The remote identifier is guaranteed to be
// usable only if the corresponding file is still accessible to the user and known to TDLib
//
// @class InputFile
// @category Files
type InputFileRemote struct {
	// Remote file identifier
	ID string `json:"id"`
}

// A file defined by a local path
//
// @class InputFile
// @category Files
type InputFileLocal struct {
	// Local path to the file
	Path string `json:"path"`
}

// A file generated by the application
//
// @class InputFile
// @category Files
type InputFileGenerated struct {
	// Local path to a file from which the file is generated; may be empty if there is no such file
	OriginalPath string `json:"original_path"`

	// String specifying the conversion applied to the original file; must be persistent across application restarts
	Conversion string `json:"conversion"`

	// Expected size of the generated file, in bytes; 0 if unknown
	ExpectedSize int64 `json:"expected_size"`
}

// Thumbnail image of a very poor quality and low resolution
//
// @category Files
type Minithumbnail struct {
	// Thumbnail width, usually doesn't exceed 40
	Width int32 `json:"width"`

	// Thumbnail height, usually doesn't exceed 40
	Height int32 `json:"height"`

	// The thumbnail in JPEG format
	Data []byte `json:"data"`
}

// Describes an image in JPEG format
//
// @category Files
type PhotoSize struct {
	// Image type (see https://core.telegram.org/constructor/photoSize)
	Type string `json:"type"`

	// Information about the image file
	Photo *File `json:"photo"`

	// Image width
	Width int32 `json:"width"`

	// Image height
	Height int32 `json:"height"`

	// Sizes of progressive JPEG file prefixes, which can be used to preliminarily show the image; in bytes
	ProgressiveSizes []int32 `json:"progressive_sizes"`
}

// Describes a photo
//
// @category Files
type Photo struct {
	// True, if stickers were added to the photo. The list of corresponding sticker sets can be received using getAttachedStickerSets
	HasStickers bool `json:"has_stickers"`

	// Photo minithumbnail; may be null
	// @optional
	Minithumbnail *Minithumbnail `json:"minithumbnail,omitempty"`

	// Available variants of the photo, in different sizes
	Sizes []*PhotoSize `json:"sizes"`
}

// Describes a document of any type
//
// @category Files
type Document struct {
	// Original name of the file; as defined by the sender
	FileName string `json:"file_name"`

	// MIME type of the file; as defined by the sender
	MimeType string `json:"mime_type"`

	// Document minithumbnail; may be null
	// @optional
	Minithumbnail *Minithumbnail `json:"minithumbnail,omitempty"`

	// File containing the document
	Document *File `json:"document"`
}

// Returns information about a file; this is an offline request
//
// @category Files
// @returns File
type GetFile struct {
	// Identifier of the file to get
	FileID int32 `json:"file_id"`
}

func (p GetFile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FileID, validation.Required),
	)
}

// Returns information about a file by its remote identifier; this is an offline request.
// Can be used to register a URL as a file for further uploading, or sending as a message
//
// @category Files
// @returns File
type GetRemoteFile struct {
	// Remote identifier of the file to get
	RemoteFileID string `json:"remote_file_id"`
}

func (p GetRemoteFile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.RemoteFileID, validation.Required),
	)
}

// Downloads a file from the cloud. Download progress and completion of the download will
// be notified through updateFile updates
//
// @category Files
// @returns File
type DownloadFile struct {
	// Identifier of the file to download
	FileID int32 `json:"file_id"`

	// Priority of the download (1-32). The higher the priority, the earlier the file will be downloaded
	Priority int32 `json:"priority"`

	// The starting position from which the file needs to be downloaded
	Offset int64 `json:"offset"`

	// Number of bytes which need to be downloaded starting from the "offset" position before the download will automatically be canceled; use 0 to download without a limit
	Limit int64 `json:"limit"`

	// Pass true to return response only after the file download has succeeded, has failed, has been canceled, or a new downloadFile request with different offset/limit parameters was sent
	Synchronous bool `json:"synchronous"`
}

func (p DownloadFile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FileID, validation.Required),
		validation.Field(&p.Priority, validation.Required, validation.Min(1), validation.Max(32)),
	)
}

// Stops the downloading of a file. If a file has already been downloaded, does nothing
//
// @category Files
// @returns Ok
type CancelDownloadFile struct {
	// Identifier of a file to stop downloading
	FileID int32 `json:"file_id"`

	// Pass true to stop downloading only if it hasn't been started, i.e. request hasn't been sent to server
	OnlyIfPending bool `json:"only_if_pending"`
}

func (p CancelDownloadFile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FileID, validation.Required),
	)
}

// Deletes a file from the TDLib file cache
//
// @category Files
// @returns Ok
type DeleteFile struct {
	// Identifier of the file to delete
	FileID int32 `json:"file_id"`
}

func (p DeleteFile) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FileID, validation.Required),
	)
}
