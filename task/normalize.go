package task

import (
	"fmt"

	internalstrings "github.com/rfenaux/agentdeck/internal/strings"
)

func normalizeStatus(status Status) Status {
	return Status(internalstrings.NormalizeLowerTrimSpace(string(status)))
}

func normalizeStatusInput(status Status) (Status, error) {
	normalized := normalizeStatus(status)
	if !normalized.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return normalized, nil
}
