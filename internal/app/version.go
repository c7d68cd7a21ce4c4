package app

// buildVersion is set at build time via:
//
//	go build -ldflags "-X github.com/hi5jack/compass-backend/internal/app.buildVersion=v1.2.3"
var buildVersion = "dev"

// BuildVersion returns the version stamped at build time, or "dev".
func BuildVersion() string {
	return buildVersion
}
