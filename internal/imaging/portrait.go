// Copyright (c) 2026 Vinterdal Labs
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imaging processes generated author portraits using pure Go
// image libraries.
package imaging

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP decoder
)

const (
	// portraitSize is the square edge of a processed portrait.
	portraitSize = 512

	jpegQuality = 85

	downloadTimeout = 60 * time.Second
)

// Processor downloads, crops and stores author portraits.
type Processor struct {
	uploadDir string
}

// NewProcessor creates a portrait processor rooted at uploadDir.
func NewProcessor(uploadDir string) *Processor {
	return &Processor{uploadDir: uploadDir}
}

// FetchPortrait downloads an image, center-crops it square, and saves it as
// JPEG under uploads/portraits. It returns the public URL path of the file.
func (p *Processor) FetchPortrait(ctx context.Context, imgURL, websiteID string) (string, error) {
	data, err := downloadImage(ctx, imgURL)
	if err != nil {
		return "", fmt.Errorf("downloading portrait: %w", err)
	}

	format := detectFormat(data)
	if format == "" {
		return "", fmt.Errorf("unsupported portrait image format")
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decoding portrait: %w", err)
	}

	// Crop to an exact square from center, downscaling with Lanczos.
	cropped := imaging.Fill(img, portraitSize, portraitSize, imaging.Center, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, cropped, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encoding portrait: %w", err)
	}

	filename := websiteID + ".jpg"
	if err := p.savePortrait(filename, buf.Bytes()); err != nil {
		return "", err
	}

	return "/uploads/portraits/" + filename, nil
}

// savePortrait writes the portrait under uploadDir/portraits, rejecting any
// filename that could escape the directory.
func (p *Processor) savePortrait(filename string, data []byte) error {
	safe := filepath.Base(filename)
	if safe == "." || safe == ".." || safe == "" {
		return fmt.Errorf("invalid portrait filename")
	}

	dir := filepath.Join(p.uploadDir, "portraits")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating portraits directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dir, safe), data, 0644); err != nil {
		return fmt.Errorf("saving portrait: %w", err)
	}
	return nil
}

// downloadImage downloads an image from a URL.
func downloadImage(ctx context.Context, imgURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imgURL, nil)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: downloadTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// detectFormat detects the image format from raw bytes.
func detectFormat(data []byte) string {
	contentType := http.DetectContentType(data)
	// Explicitly reject TIFF (CVE-2023-36308 in disintegration/imaging)
	if strings.Contains(contentType, "tiff") {
		return ""
	}
	switch {
	case strings.Contains(contentType, "jpeg"):
		return "jpeg"
	case strings.Contains(contentType, "png"):
		return "png"
	case strings.Contains(contentType, "webp"):
		return "webp"
	default:
		return ""
	}
}
