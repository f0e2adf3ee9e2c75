package oauthmodel

// MaxCodeLength caps the accepted authorization code size.
const MaxCodeLength = 512

// ValidateCode checks that code is non-empty, bounded, and made of
// printable ASCII with no whitespace.
func ValidateCode(code string) error {
	if code == "" {
		return ErrEmptyCode
	}
	if len(code) > MaxCodeLength {
		return ErrCodeTooLong
	}
	for i := 0; i < len(code); i++ {
		if c := code[i]; c <= ' ' || c > '~' {
			return ErrCodeInvalidChars
		}
	}
	return nil
}
