package config

// SecretStringValue replaces actual value when configuration is dumped.
const SecretStringValue = "<secret>"

// SecretString is used for credentials which should never reach logs, dumps
// or debug reports.
type SecretString string

// Value returns actual secret.
func (s SecretString) Value() string {
	return string(s)
}

// String masks the value for fmt and zap.Stringer.
func (s SecretString) String() string {
	if len(s) == 0 {
		return ""
	}
	return SecretStringValue
}

// MarshalJSON marshals SecretString to JSON making sure that actual value is not visible.
func (s SecretString) MarshalJSON() ([]byte, error) {
	if len(s) == 0 {
		return []byte("null"), nil
	}
	return []byte("\"" + SecretStringValue + "\""), nil
}

// MarshalYAML marshals SecretString to YAML making sure that actual value is not visible.
func (s SecretString) MarshalYAML() (any, error) {
	if len(s) == 0 {
		return nil, nil
	}
	return SecretStringValue, nil
}
