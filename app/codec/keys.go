package codec

import "strings"

// ToWireKey converts a snake_case domain field name into the camelCase key used on the wire
// (tax_id -> taxId, br_code_base64 -> brCodeBase64). Underscores that do not separate two
// words are kept as they are.
func ToWireKey(domainKey string) string {
	var b strings.Builder
	b.Grow(len(domainKey))

	upper := false
	for i := 0; i < len(domainKey); i++ {
		c := domainKey[i]
		if c == '_' && i > 0 && i < len(domainKey)-1 && domainKey[i-1] != '_' && isLower(domainKey[i+1]) {
			upper = true
			continue
		}
		if upper {
			c = c - 'a' + 'A'
			upper = false
		}
		b.WriteByte(c)
	}

	return b.String()
}

// ToDomainKey converts a camelCase wire key into its snake_case domain name. Keys that are
// already snake_case come back unchanged.
func ToDomainKey(wireKey string) string {
	var b strings.Builder
	b.Grow(len(wireKey) + 4)

	for i := 0; i < len(wireKey); i++ {
		c := wireKey[i]
		if isUpper(c) {
			if i > 0 && wireKey[i-1] != '_' {
				b.WriteByte('_')
			}
			c = c - 'A' + 'a'
		}
		b.WriteByte(c)
	}

	return b.String()
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
