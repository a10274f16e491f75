package forms

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultMaxMemory = 10 << 20

// Attachment is one binary file sent with a submission. The raw bytes are
// passed through to the image store untouched; validation only checks
// presence.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Submission is the raw, untrusted input for a single request: string field
// values plus zero or more named attachments.
type Submission struct {
	Values url.Values
	Files  map[string]*Attachment
}

// Get returns the first raw value for the named field and whether the field
// was present at all.
func (s Submission) Get(name string) (string, bool) {
	if s.Values == nil {
		return "", false
	}
	vs, ok := s.Values[name]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// File returns the named attachment, or nil when absent.
func (s Submission) File(name string) *Attachment {
	if s.Files == nil {
		return nil
	}
	return s.Files[name]
}

// FromRequest builds a Submission from a POST body, handling both urlencoded
// and multipart payloads.
func FromRequest(r *http.Request) (Submission, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(defaultMaxMemory); err != nil {
			return Submission{}, fmt.Errorf("parse multipart form: %w", err)
		}

		files := make(map[string]*Attachment)
		for name, headers := range r.MultipartForm.File {
			if len(headers) == 0 {
				continue
			}

			header := headers[0]
			f, err := header.Open()
			if err != nil {
				return Submission{}, fmt.Errorf("open attachment %s: %w", name, err)
			}

			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return Submission{}, fmt.Errorf("read attachment %s: %w", name, err)
			}

			files[name] = &Attachment{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Data:        data,
			}
		}

		return Submission{Values: r.MultipartForm.Value, Files: files}, nil
	}

	if err := r.ParseForm(); err != nil {
		return Submission{}, fmt.Errorf("parse form: %w", err)
	}

	return Submission{Values: r.PostForm}, nil
}
