package configs

import "os"

const (
	// DefaultInputDir is where concat-videos looks for clips when no
	// --input-dir is given.
	DefaultInputDir = "tmp"

	// DefaultOutput is the default merged file name.
	DefaultOutput = "merged_video.mp4"

	// ManifestName is the concat list file written next to the output.
	ManifestName = "concat_list.txt"
)

// ClientSecretsPath returns the OAuth client secrets file location.
// CLIPTOOLS_CLIENT_SECRETS_PATH takes priority; the fallback is
// client_secrets.json in the working directory.
func ClientSecretsPath() string {
	if path := os.Getenv("CLIPTOOLS_CLIENT_SECRETS_PATH"); path != "" {
		return path
	}
	return "client_secrets.json"
}
