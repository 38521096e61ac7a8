package config

import "time"

// CertificateSource describes one trust domain whose signed tokens are
// accepted: where to fetch its signing keys, which issuers it uses and which
// audiences a token must carry to be routed to it.
type CertificateSource struct {
	Name      string
	URL       string
	Issuers   []string
	Audiences []string
}

type Config struct {
	DatabaseURL        string
	SessionSecret      string
	SessionLifetime    time.Duration
	GoogleClientID     string
	GoogleClientSecret string
	FirebaseProjectID  string
	CertificateSources []CertificateSource
	UserinfoURL        string
	DevMode            bool
	BaseURL            string
	FrontendURL        string
	Environment        string
	Port               string
}
