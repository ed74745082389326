package services

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"tourbooking/errors"
)

// ImageUploader stores an image and returns its public URL
type ImageUploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}

type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryUploader returns nil when cld is nil so callers can detect a missing configuration
func NewCloudinaryUploader(cld *cloudinary.Cloudinary) ImageUploader {
	if cld == nil {
		return nil
	}
	return &CloudinaryUploader{cld: cld}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", errors.NewAppError(errors.ErrCodeUnavailable, "Upload failed", err)
	}
	if resp.Error.Message != "" {
		return "", errors.NewAppError(errors.ErrCodeUnavailable, "Upload failed", fmt.Errorf("%s", resp.Error.Message))
	}
	return resp.SecureURL, nil
}

const cloudinaryUploadSegment = "/image/upload/"

var transformationRegex = regexp.MustCompile(`^[a-z]{1,3}_[^,/]+(,[a-z]{1,3}_[^,/]+)*$`)

// OptimizedImageURL adds automatic format, quality and a width to Cloudinary delivery URLs.
// Other URLs, and Cloudinary URLs that already carry a transformation, are returned as is.
func OptimizedImageURL(url string, width int) string {
	if !strings.Contains(url, "res.cloudinary.com") {
		return url
	}
	i := strings.Index(url, cloudinaryUploadSegment)
	if i < 0 {
		return url
	}
	rest := url[i+len(cloudinaryUploadSegment):]
	first := rest
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		first = rest[:j]
	}
	if transformationRegex.MatchString(first) {
		return url
	}

	transform := "f_auto,q_auto"
	if width > 0 {
		transform += fmt.Sprintf(",w_%d,c_limit", width)
	}
	return url[:i+len(cloudinaryUploadSegment)] + transform + "/" + rest
}
