package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const pdfMimeType = "application/pdf"

// DriveService uploads rendered documents to Google Drive
type DriveService struct {
	client *drive.Service
}

// Ensure DriveService implements DriveServiceInterface
var _ DriveServiceInterface = (*DriveService)(nil)

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath string) (*DriveService, error) {
	return newDriveService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(drive.DriveFileScope),
	)
}

func newDriveService(ctx context.Context, opts ...option.ClientOption) (*DriveService, error) {
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client: driveService,
	}, nil
}

// UploadDocument stores a PDF in the given folder and returns its web link
// (or the file ID when Drive does not report a link)
func (ds *DriveService) UploadDocument(ctx context.Context, folderID string, name string, data []byte) (string, error) {
	file := &drive.File{
		Name:     name,
		MimeType: pdfMimeType,
	}
	if folderID != "" {
		file.Parents = []string{folderID}
	}

	created, err := ds.client.Files.Create(file).
		Media(bytes.NewReader(data)).
		Fields("id, name, webViewLink").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}

	log.Infof("☁️  Uploaded %s to Drive (id: %s)", created.Name, created.Id)
	if created.WebViewLink != "" {
		return created.WebViewLink, nil
	}
	return created.Id, nil
}
