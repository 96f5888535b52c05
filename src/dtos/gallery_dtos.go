package dtos

// GalleryUploadResult is the response body for a successful gallery upload.
type GalleryUploadResult struct {
	EventID        int      `json:"eventId"`
	EventName      string   `json:"eventName"`
	UploadedImages []string `json:"uploadedImages"`
	TotalImages    int      `json:"totalImages"`
}

// DeleteImageRequest removes a single image from a named event's gallery.
type DeleteImageRequest struct {
	EventName string `json:"eventName"`
	ImageURL  string `json:"imageUrl"`
}

// DriveImportRequest appends images fetched from Google Drive share links.
type DriveImportRequest struct {
	EventName string   `json:"eventName"`
	DriveURLs []string `json:"driveUrls"`
}
