package assets

import (
	"fmt"
	"regexp"
)

// MaxSlugLength bounds a bundle slug; it becomes part of a filename.
const MaxSlugLength = 100

// slugPattern is the handle alphabet: no dots, separators or traversal.
var slugPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*$`)

// ValidateAssetName checks a bundle slug or snippet name before it is joined
// into a path under the theme directory.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	case len(name) > MaxSlugLength:
		return fmt.Errorf("%w: %d chars, max %d", ErrInvalidAssetName, len(name), MaxSlugLength)
	case !slugPattern.MatchString(name):
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
