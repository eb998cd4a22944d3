package service

import (
	"strings"

	"github.com/MKhiriev/amnplus-client/models"
)

func filterByTerm[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	matched := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), term) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

func passwordSearchFields(p models.DecryptedPassword) []string {
	return []string{p.Title, p.Username}
}

func apiKeySearchFields(k models.DecryptedAPIKey) []string {
	return []string{k.Title, k.Description}
}
