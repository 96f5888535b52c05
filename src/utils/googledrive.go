package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var (
	driveService *drive.Service
	driveOnce    sync.Once
)

// InitGoogleDriveService initializes the Drive client from a service account,
// either a credentials file path or inline JSON.
func InitGoogleDriveService() error {
	var initErr error
	driveOnce.Do(func() {
		ctx := context.Background()

		credsBytes := []byte(os.Getenv("GOOGLE_DRIVE_CREDENTIALS_JSON"))
		if credentialsPath := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_PATH"); credentialsPath != "" {
			var readErr error
			credsBytes, readErr = os.ReadFile(credentialsPath)
			if readErr != nil {
				initErr = fmt.Errorf("error reading Drive credentials file: %w", readErr)
				return
			}
		}
		if len(credsBytes) == 0 {
			initErr = fmt.Errorf("GOOGLE_DRIVE_CREDENTIALS_PATH or GOOGLE_DRIVE_CREDENTIALS_JSON must be configured")
			return
		}

		creds, err := google.CredentialsFromJSON(ctx, credsBytes, drive.DriveReadonlyScope)
		if err != nil {
			initErr = fmt.Errorf("error loading Drive credentials: %w", err)
			return
		}

		driveService, err = drive.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			initErr = fmt.Errorf("error creating Drive service: %w", err)
			return
		}

		log.Printf("[GOOGLE_DRIVE] service initialized")
	})
	return initErr
}

// GetGoogleDriveService returns the Drive client, initializing it on first use.
func GetGoogleDriveService() (*drive.Service, error) {
	if driveService == nil {
		if err := InitGoogleDriveService(); err != nil {
			return nil, err
		}
	}
	return driveService, nil
}

// ExtractFileIDFromURL pulls the file id out of a Google Drive share URL.
func ExtractFileIDFromURL(url string) (string, error) {
	patterns := []string{
		`/file/d/([a-zA-Z0-9_-]+)`,                     // /file/d/FILE_ID
		`id=([a-zA-Z0-9_-]+)`,                          // ?id=FILE_ID
		`drive\.google\.com/open\?id=([a-zA-Z0-9_-]+)`, // open?id=FILE_ID
	}

	for _, pattern := range patterns {
		re := regexp.MustCompile(pattern)
		matches := re.FindStringSubmatch(url)
		if len(matches) > 1 {
			return matches[1], nil
		}
	}

	return "", fmt.Errorf("could not extract a file id from URL: %s", url)
}

// DownloadDriveFile fetches the file's bytes through the Drive API. Folders
// cannot be downloaded.
func DownloadDriveFile(fileID string) ([]byte, error) {
	service, err := GetGoogleDriveService()
	if err != nil {
		return nil, err
	}

	file, err := service.Files.Get(fileID).Fields("id", "name", "mimeType", "size").Do()
	if err != nil {
		return nil, fmt.Errorf("error fetching file metadata: %w", err)
	}

	if file.MimeType == "application/vnd.google-apps.folder" {
		return nil, fmt.Errorf("drive folders cannot be downloaded directly")
	}

	resp, err := service.Files.Get(fileID).Download()
	if err != nil {
		return nil, fmt.Errorf("error downloading file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading file body: %w", err)
	}

	log.Printf("[GOOGLE_DRIVE] downloaded %s (%d bytes)", file.Name, len(data))
	return data, nil
}

// IsGoogleDriveURL reports whether a URL points at Google Drive.
func IsGoogleDriveURL(url string) bool {
	return regexp.MustCompile(`drive\.google\.com`).MatchString(url)
}
