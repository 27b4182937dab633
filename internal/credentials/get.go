package credentials

// Source identifies where [Store.Lookup] found a value.
type Source int

const (
	SourceNone Source = iota
	SourceCredentials
	SourceEnvironment
)

func (s Source) String() string {
	switch s {
	case SourceCredentials:
		return "credentials"
	case SourceEnvironment:
		return "environment"
	default:
		return "none"
	}
}

// Lookup returns the value of key from creds if the key is present there,
// even when its value is empty. Otherwise it falls back to a non-empty
// environment value.
func (s *Store) Lookup(creds Credentials, key string) (string, Source, bool) {
	if value, ok := creds[key]; ok {
		return stringify(value), SourceCredentials, true
	}

	if value, ok := s.env.Lookup(key); ok && value != "" {
		return value, SourceEnvironment, true
	}

	return "", SourceNone, false
}

// Get is [Store.Lookup] with a default returned when neither source has the
// key.
func (s *Store) Get(creds Credentials, key, def string) string {
	value, source, ok := s.Lookup(creds, key)
	if !ok {
		s.logger.Warn().Str("key", key).Msg("credential not found in JSON file or environment")
		return def
	}

	if source == SourceEnvironment {
		s.logger.Info().Str("key", key).Msg("using environment variable")
	}

	return value
}
