// Package upload takes an incoming multipart file and turns it into a stable
// URL, either by writing it under the public static directory or by
// forwarding it to an external image-hosting service. A project record is
// only ever pointed at a URL after the whole intake succeeded.
package upload

import (
	"context"
	"mime/multipart"
	"regexp"
	"strings"
)

// Intake stores one uploaded file and returns the URL it will be served from.
type Intake interface {
	Store(ctx context.Context, fh *multipart.FileHeader, tags []string) (string, error)
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// sanitizeName flattens everything outside [a-zA-Z0-9] to underscores,
// extension included, matching the naming of already-served files.
func sanitizeName(name string) string {
	return unsafeChars.ReplaceAllString(name, "_")
}

func isPDF(fh *multipart.FileHeader) bool {
	if strings.EqualFold(fh.Header.Get("Content-Type"), "application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(fh.Filename), ".pdf")
}
