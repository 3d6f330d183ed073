package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fadhlanhapp/trekshare-backend/logger"
	"github.com/fadhlanhapp/trekshare-backend/models"
	"github.com/fadhlanhapp/trekshare-backend/utils"
	"github.com/google/uuid"
)

// MaxGalleryImages caps the number of gallery files accepted per form
const MaxGalleryImages = 12

var allowedImageExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// MediaService stores uploaded trek images on local disk
type MediaService struct {
	dir            string
	thumbnailWidth int
}

// NewMediaService creates a media service writing into dir
func NewMediaService(dir string, thumbnailWidth int) *MediaService {
	return &MediaService{dir: dir, thumbnailWidth: thumbnailWidth}
}

// SaveTemplateMedia stores the cover (with a thumbnail) and gallery images of a template form.
// Files written before a failure are removed.
func (s *MediaService) SaveTemplateMedia(cover *multipart.FileHeader, gallery []*multipart.FileHeader) (models.TemplateMedia, error) {
	var media models.TemplateMedia
	if len(gallery) > MaxGalleryImages {
		return media, utils.NewValidationError(fmt.Sprintf("at most %d gallery images", MaxGalleryImages))
	}

	if cover != nil {
		path, err := s.saveHeader(cover)
		if err != nil {
			return media, err
		}
		media.CoverImage = path

		thumb, err := s.Thumbnail(path)
		if err != nil {
			s.Remove(path)
			return models.TemplateMedia{}, err
		}
		media.CoverThumbnail = thumb
	}

	for _, header := range gallery {
		path, err := s.saveHeader(header)
		if err != nil {
			s.Remove(append([]string{media.CoverImage, media.CoverThumbnail}, media.Gallery...)...)
			return models.TemplateMedia{}, err
		}
		media.Gallery = append(media.Gallery, path)
	}
	return media, nil
}

func (s *MediaService) saveHeader(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", utils.NewBadRequestError(fmt.Sprintf("Cannot read uploaded file %s", header.Filename))
	}
	defer file.Close()

	return s.Store(header.Filename, file)
}

// Store writes r under a generated name keeping the original extension
func (s *MediaService) Store(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return "", utils.NewValidationError("Only JPG, JPEG, and PNG files are supported")
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(s.dir, uuid.New().String()+ext)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	defer out.Close()

	written, err := io.Copy(out, r)
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	logger.WithFields(logger.Fields{"file": utils.CleanFileName(filename), "path": path, "bytes": written}).Debug("Stored upload")
	return path, nil
}

// Thumbnail writes a width-bounded copy of the image next to it
func (s *MediaService) Thumbnail(path string) (string, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return "", utils.NewValidationError("Uploaded cover is not a readable image")
	}

	if img.Bounds().Dx() > s.thumbnailWidth {
		img = imaging.Resize(img, s.thumbnailWidth, 0, imaging.Lanczos)
	}

	thumbPath := filepath.Join(filepath.Dir(path), "thumb_"+filepath.Base(path))
	if err := imaging.Save(img, thumbPath); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}
	return thumbPath, nil
}

// Remove deletes stored files, ignoring empty paths
func (s *MediaService) Remove(paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			logger.WithFields(logger.Fields{"path": p, "error": err}).Warn("Failed to remove upload")
		}
	}
}
