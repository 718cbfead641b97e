// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package docx

import (
	"fmt"
	"net/url"
	"strings"
)

// validateLinkTarget accepts absolute http and https URLs with a host and
// mailto URLs with an address. godocx registers any string as a relationship
// target, so this is the only gate in front of a broken link.
func validateLinkTarget(target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("%w: empty target", ErrInvalidLinkTarget)
	}

	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLinkTarget, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("%w: %q has no host", ErrInvalidLinkTarget, target)
		}
	case "mailto":
		if u.Opaque == "" {
			return fmt.Errorf("%w: %q has no address", ErrInvalidLinkTarget, target)
		}
	default:
		return fmt.Errorf("%w: %q is not an http, https or mailto URL", ErrInvalidLinkTarget, target)
	}

	return nil
}
