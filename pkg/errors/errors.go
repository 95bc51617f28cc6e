package errors

import (
	"fmt"
	"sort"
	"strings"
)

type MissingCredentialsErr struct {
	Fields map[string]string
}

func (e MissingCredentialsErr) Error() string {
	// Get names of empty credential fields
	missingKeys := make([]string, 0, len(e.Fields))
	for key, val := range e.Fields {
		if val == "" {
			missingKeys = append(missingKeys, key)
		}
	}
	sort.Strings(missingKeys)

	if len(missingKeys) > 0 {
		allKeys := strings.Join(missingKeys, ", ")
		return fmt.Sprintf("insufficient credentials: [%s]", allKeys)
	}
	return "insufficient credentials"
}
