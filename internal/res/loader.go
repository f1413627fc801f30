// Package res acquires and decodes recipe photos. Acquisition is the only
// part of generation that touches the outside world; everything downstream
// of the prefetch barrier works from decoded pixels in memory.
package res

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Resource represents a loaded photo: raw bytes plus the mime type when
// known.
type Resource struct {
	URL      string
	Data     []byte
	MimeType string
}

// GetReader returns a reader over the resource data.
func (r *Resource) GetReader() *bytes.Reader {
	return bytes.NewReader(r.Data)
}

// Loader handles loading photos from data URLs, local paths and http(s)
// URLs. Loaded resources are cached by URL, so books that reuse a photo
// fetch it once.
type Loader struct {
	// Base URL or file path for resolving relative URLs
	BaseURL string

	cache     map[string]*Resource
	cacheLock sync.RWMutex

	searchPaths []string

	client *http.Client
}

// NewLoader creates a new photo loader.
func NewLoader(baseURL string) *Loader {
	return &Loader{
		BaseURL:     baseURL,
		cache:       make(map[string]*Resource),
		searchPaths: []string{},
		client:      &http.Client{},
	}
}

// AddSearchPath adds a directory to search for local photos that are not
// found at their recorded path.
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// Load loads a photo from a URL or file path.
func (l *Loader) Load(urlStr string) (*Resource, error) {
	l.cacheLock.RLock()
	if res, ok := l.cache[urlStr]; ok {
		l.cacheLock.RUnlock()
		return res, nil
	}
	l.cacheLock.RUnlock()

	if strings.HasPrefix(urlStr, "data:") {
		res, err := parseDataURL(urlStr)
		if err != nil {
			return nil, err
		}
		l.store(urlStr, res)
		return res, nil
	}

	resolvedURL, err := l.resolveURL(urlStr)
	if err != nil {
		return nil, err
	}

	var res *Resource
	if strings.HasPrefix(resolvedURL, "http://") || strings.HasPrefix(resolvedURL, "https://") {
		res, err = l.loadRemote(resolvedURL)
	} else {
		res, err = l.loadLocal(resolvedURL)
	}
	if err != nil {
		return nil, err
	}

	l.store(urlStr, res)
	return res, nil
}

func (l *Loader) store(key string, res *Resource) {
	l.cacheLock.Lock()
	l.cache[key] = res
	l.cacheLock.Unlock()
}

// parseDataURL parses a data URL (RFC 2397) and returns a Resource.
// Examples:
//
//	data:image/png;base64,<base64>
//	data:image/jpeg,<url-escaped bytes>
func parseDataURL(u string) (*Resource, error) {
	if !strings.HasPrefix(u, "data:") {
		return nil, fmt.Errorf("not a data URL")
	}
	s := strings.TrimPrefix(u, "data:")
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid data URL")
	}
	meta := parts[0]
	dataPart := parts[1]

	mime := "application/octet-stream"
	isBase64 := false
	if meta != "" {
		// meta can be like: image/png;base64 or image/svg+xml;charset=utf-8
		comps := strings.Split(meta, ";")
		if len(comps) > 0 && comps[0] != "" {
			mime = comps[0]
		}
		for _, c := range comps[1:] {
			if strings.EqualFold(strings.TrimSpace(c), "base64") {
				isBase64 = true
			}
		}
	}

	var data []byte
	var err error
	if isBase64 {
		data, err = base64.StdEncoding.DecodeString(dataPart)
		if err != nil {
			return nil, fmt.Errorf("invalid base64 data URL: %w", err)
		}
	} else {
		// The non-base64 form is URL-escaped
		if d, derr := url.QueryUnescape(dataPart); derr == nil {
			data = []byte(d)
		} else {
			data = []byte(dataPart)
		}
	}

	return &Resource{URL: u, Data: data, MimeType: mime}, nil
}

// resolveURL resolves a URL relative to the base URL.
func (l *Loader) resolveURL(urlStr string) (string, error) {
	if strings.HasPrefix(urlStr, "http://") || strings.HasPrefix(urlStr, "https://") {
		return urlStr, nil
	}

	if filepath.IsAbs(urlStr) {
		return urlStr, nil
	}

	if !strings.HasPrefix(l.BaseURL, "http://") && !strings.HasPrefix(l.BaseURL, "https://") {
		if l.BaseURL == "" {
			return urlStr, nil
		}
		baseDir := filepath.Dir(l.BaseURL)
		return filepath.Join(baseDir, urlStr), nil
	}

	baseURL, err := url.Parse(l.BaseURL)
	if err != nil {
		return "", err
	}
	relURL, err := url.Parse(urlStr)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(relURL).String(), nil
}

// loadRemote loads a photo from a remote URL.
func (l *Loader) loadRemote(urlStr string) (*Resource, error) {
	resp, err := l.client.Get(urlStr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Resource{
		URL:      urlStr,
		Data:     data,
		MimeType: resp.Header.Get("Content-Type"),
	}, nil
}

// loadLocal loads a photo from a local file.
func (l *Loader) loadLocal(path string) (*Resource, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.loadFromSearchPaths(path)
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &Resource{
		URL:      path,
		Data:     data,
		MimeType: mimeTypeForPath(path),
	}, nil
}

// loadFromSearchPaths tries to load a photo from the search paths.
func (l *Loader) loadFromSearchPaths(filename string) (*Resource, error) {
	baseFilename := filepath.Base(filename)

	for _, searchPath := range l.searchPaths {
		path := filepath.Join(searchPath, baseFilename)

		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		return &Resource{
			URL:      path,
			Data:     data,
			MimeType: mimeTypeForPath(path),
		}, nil
	}

	return nil, fmt.Errorf("photo not found: %s", filename)
}

// mimeTypeForPath guesses a mime type from the file extension.
func mimeTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	default:
		return "application/octet-stream"
	}
}
