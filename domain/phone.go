package domain

import "strings"

// UserSuffix is the addressing domain of individual chats.
const UserSuffix = "@c.us"

// NormalizeChatID turns a phone number into a chat address.
// An address already carrying the suffix is returned unchanged, so the
// transform is idempotent. No number format validation happens here.
func NormalizeChatID(phone string) string {
	if strings.Contains(phone, UserSuffix) {
		return phone
	}
	return phone + UserSuffix
}

// CleanPhone strips the characters people type around a number: '+', spaces,
// dashes and parentheses.
func CleanPhone(phone string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '+', ' ', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(phone))
}
