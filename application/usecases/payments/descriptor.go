package payments

import (
	"fmt"
	"strings"

	"ohppos.io/application/constants"
	"ohppos.io/application/utils"
)

// StatementDescriptorSuffix maps a POS category onto the bank-statement suffix.
// Matching is a case-insensitive substring test, checked in order.
func StatementDescriptorSuffix(category string) string {
	normalized := strings.ToLower(category)
	var suffix string
	switch {
	case strings.Contains(normalized, "concession"):
		suffix = constants.CONCESSIONS_DESCRIPTOR
	case strings.Contains(normalized, "merch"):
		suffix = constants.MERCH_DESCRIPTOR
	case strings.Contains(normalized, "art"):
		suffix = constants.ART_DESCRIPTOR
	default:
		suffix = constants.DEFAULT_DESCRIPTOR
	}
	return utils.Truncate(suffix, constants.STATEMENT_DESCRIPTOR_MAX_LENGTH)
}

// Description prefers the caller's description and otherwise names the category.
func Description(description string, category string) string {
	if trimmed := strings.TrimSpace(description); trimmed != "" {
		return trimmed
	}
	if trimmed := strings.TrimSpace(category); trimmed != "" {
		return fmt.Sprintf("%s - %s", constants.DESCRIPTION_PREFIX, trimmed)
	}
	return constants.DESCRIPTION_PREFIX
}
