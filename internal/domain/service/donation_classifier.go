package service

import "strings"

// IsDonationCategory classifies a pledge category as a donation by name.
// The check is a case-insensitive substring match, so "Donations", "general
// donation" and "DONATION DRIVE" all count; anything else is tuition-side.
func IsDonationCategory(categoryName string) bool {
	return strings.Contains(strings.ToLower(categoryName), "donation")
}
