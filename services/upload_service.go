package services

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/sirupsen/logrus"

	"github.com/albertkemp/home-cooking/entity"
	"github.com/albertkemp/home-cooking/pkg/apperr"
	"github.com/albertkemp/home-cooking/repository"
)

// AssetStore accepts a binary blob and returns a stable URL. The rest
// of the system only ever stores the URL.
type AssetStore interface {
	Save(kind, filename string, r io.Reader) (string, error)
}

// DiskStore keeps assets under Dir and serves them from BaseURL.
// Oversized images are scaled down before writing.
type DiskStore struct {
	Dir     string
	BaseURL string
}

const maxImageWidth = 1600

func NewDiskStore(dir, baseURL string) *DiskStore {
	return &DiskStore{Dir: dir, BaseURL: baseURL}
}

func (d *DiskStore) Save(kind, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	name := uuid.NewString() + ext

	dir := filepath.Join(d.Dir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)

	switch ext {
	case ".jpg", ".jpeg", ".png":
		img, _, err := image.Decode(r)
		if err != nil {
			return "", apperr.Wrap(apperr.ErrInvalidInput, "not a decodable image")
		}
		if img.Bounds().Dx() > maxImageWidth {
			img = resize.Resize(maxImageWidth, 0, img, resize.Lanczos3)
		}
		f, err := os.Create(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		if ext == ".png" {
			err = png.Encode(f, img)
		} else {
			err = jpeg.Encode(f, img, &jpeg.Options{Quality: 85})
		}
		if err != nil {
			return "", err
		}
	default:
		return "", apperr.Wrap(apperr.ErrInvalidInput, "unsupported file type %s", ext)
	}

	return d.BaseURL + "/" + kind + "/" + name, nil
}

type UploadService struct {
	Store    AssetStore
	ImgRepo  *repository.ImageRepository
	UserRepo *repository.UserRepository
}

func NewUploadService(store AssetStore, imgRepo *repository.ImageRepository, userRepo *repository.UserRepository) *UploadService {
	return &UploadService{Store: store, ImgRepo: imgRepo, UserRepo: userRepo}
}

// Upload stores the blob, records an Image row, and for profile uploads
// also points the user's image field at the new URL.
func (s *UploadService) Upload(p Principal, kind, filename string, r io.Reader, foodItemID *uint) (*entity.Image, error) {
	if kind == "" {
		return nil, apperr.Wrap(apperr.ErrInvalidInput, "no type provided")
	}

	url, err := s.Store.Save(kind, filename, r)
	if err != nil {
		return nil, err
	}

	img := entity.Image{URL: url, UserID: &p.UserID, FoodItemID: foodItemID}
	if err := s.ImgRepo.Create(&img); err != nil {
		return nil, err
	}

	if kind == "profile" {
		if err := s.UserRepo.Update(p.UserID, map[string]any{"image": url}); err != nil {
			return nil, err
		}
	}

	logrus.WithFields(logrus.Fields{"userId": p.UserID, "kind": kind, "url": url}).Info("asset uploaded")
	return &img, nil
}
