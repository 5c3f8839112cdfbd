// File: lixenwraith/compileropts/helper.go
package compileropts

import (
	"fmt"
	"strings"
)

// flattenMap converts a nested map[string]any to a flat map with dot-notation
// keys, so that a [dagger] table holding fastInit yields "dagger.fastInit".
// A key spelled both quoted and as a table is rejected with ErrDuplicateKey.
func flattenMap(nested map[string]any, prefix string) (map[string]any, error) {
	flat := make(map[string]any)
	if err := flattenInto(flat, nested, prefix); err != nil {
		return nil, err
	}
	return flat, nil
}

func flattenInto(flat, nested map[string]any, prefix string) error {
	for key, value := range nested {
		newKey := key
		if prefix != "" {
			newKey = prefix + "." + key
		}

		if nestedMap, isMap := value.(map[string]any); isMap {
			if err := flattenInto(flat, nestedMap, newKey); err != nil {
				return err
			}
			continue
		}
		if _, exists := flat[newKey]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateKey, newKey)
		}
		flat[newKey] = value
	}
	return nil
}

// isValidKeySegment checks that a single key segment is a Java identifier
// restricted to ASCII: a letter, '_' or '$', then letters, digits, '_' or '$'.
func isValidKeySegment(s string) bool {
	if len(s) == 0 {
		return false
	}

	for i, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		isDigit := r >= '0' && r <= '9'
		isSymbol := r == '_' || r == '$'

		if i == 0 && isDigit {
			return false
		}
		if !(isLetter || isDigit || isSymbol) {
			return false
		}
	}
	return true
}

// asciiUpper upper-cases ASCII letters only, leaving every other rune as is.
func asciiUpper(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, s)
}
