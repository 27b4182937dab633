package credentials

//go:generate mockgen -source=interfaces.go -destination=../mock/environment_mock.go -package=mock

// Environment is the mutable key/value store the credentials are mirrored
// into. Production code binds it to the process environment.
type Environment interface {
	// Lookup returns the value stored under key and whether the key is set.
	Lookup(key string) (string, bool)

	// Set stores value under key, overwriting any previous value.
	Set(key, value string) error
}
