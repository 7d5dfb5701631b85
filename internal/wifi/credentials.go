package wifi

// Credentials are the values read from the host for the connected network.
type Credentials struct {
	// SSID is the network name.
	SSID string

	// Password is the stored passphrase. Empty when the host has none.
	Password string

	// EncryptionRaw is the host's free-form descriptor, e.g. "wpa2-personal".
	EncryptionRaw string
}

// Config holds the fields encoded into a Wi-Fi QR payload.
type Config struct {
	Type     Encryption
	SSID     string
	Password string
	Hidden   bool
}

// NewConfig derives a payload Config from host credentials.
func NewConfig(creds Credentials, hidden bool) Config {
	return Config{
		Type:     Classify(creds.EncryptionRaw),
		SSID:     creds.SSID,
		Password: creds.Password,
		Hidden:   hidden,
	}
}
