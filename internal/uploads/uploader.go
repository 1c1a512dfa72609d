package uploads

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"path/filepath"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/RenoBuildCo/reno-marketplace/internal/config"
)

const (
	MaxFileSize   = 5 * 1024 * 1024
	MaxFilesCount = 3
	maxWidth      = 1600
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Uploader converts project photos to webp and stores them in S3.
type Uploader struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// New returns nil when no bucket is configured; photo upload is then
// rejected at the handler.
func New(cfg *config.Config) *Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: awsv2.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &Uploader{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// UploadProjectPhotos validates, converts and stores the uploaded files,
// returning one public URL per file.
func (u *Uploader) UploadProjectPhotos(ctx context.Context, projectID uint, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > MaxFilesCount {
		return nil, fmt.Errorf("at most %d photos allowed per upload", MaxFilesCount)
	}

	var urls []string
	for _, fh := range files {
		if fh.Size > MaxFileSize {
			return nil, fmt.Errorf("file %s exceeds the 5MB limit", fh.Filename)
		}

		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if !allowedExtensions[ext] {
			return nil, fmt.Errorf("file %s has an unsupported format, only JPG and PNG are allowed", fh.Filename)
		}

		f, err := fh.Open()
		if err != nil {
			return nil, err
		}

		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("file %s is not a valid image", fh.Filename)
		}

		encoded, err := encodeWebP(img)
		if err != nil {
			return nil, err
		}

		key := fmt.Sprintf("projects/%d/%s.webp", projectID, uuid.NewString())
		_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      awsv2.String(u.bucket),
			Key:         awsv2.String(key),
			Body:        bytes.NewReader(encoded),
			ContentType: awsv2.String("image/webp"),
		})
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}

		urls = append(urls, u.publicURL+"/"+key)
	}

	return urls, nil
}

func encodeWebP(img image.Image) ([]byte, error) {
	bounds := img.Bounds()
	if bounds.Dx() > maxWidth {
		h := bounds.Dy() * maxWidth / bounds.Dx()
		scaled := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, draw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: 82}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
