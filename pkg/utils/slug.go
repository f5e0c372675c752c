package utils

import (
	"math/rand"
	"strings"

	"github.com/gosimple/slug"
)

const slugSuffixChars = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify normalizes a display name into a URL slug.
func Slugify(name string) string {
	return slug.Make(name)
}

// SlugifyUnique appends a short random suffix so that products sharing a
// display name still get distinct slugs.
func SlugifyUnique(name string) string {
	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = slugSuffixChars[rand.Intn(len(slugSuffixChars))]
	}

	return slug.Make(name + "-" + string(suffix))
}

// PublicIDFromURL recovers the Cloudinary public id from a delivery URL:
// the last two path segments with the file extension stripped.
func PublicIDFromURL(imageURL string) string {
	segments := strings.Split(imageURL, "/")
	if len(segments) > 2 {
		segments = segments[len(segments)-2:]
	}

	publicID := strings.Join(segments, "/")
	if idx := strings.LastIndex(publicID, "."); idx != -1 {
		publicID = publicID[:idx]
	}

	return publicID
}
