package models

import "time"

// FileInfo describes one regular file inside a pipeline folder.
type FileInfo struct {
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	ModifiedTime time.Time `json:"modified_time"` // UTC
}

// FolderListing is the contents of one pipeline folder, recomputed per request.
type FolderListing struct {
	Folder string     `json:"folder"`
	Files  []FileInfo `json:"files"`
}
