package handler

import "net/http"

// Build metadata, injected at build time via ldflags:
//
//	go build -ldflags "-X github.com/orvane/Gemstore_Go/internal/handler.Version=v1.2.3 ..."
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string `json:"version"`
	BuildTime string `json:"build_time"`
	GitCommit string `json:"git_commit"`
}

// HandleVersion returns build information.
//
//	@Summary		Build version
//	@Description	Returns the version, build time, and git commit of the running binary
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	VersionInfo
//	@Router			/version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionInfo{
			Version:   Version,
			BuildTime: BuildTime,
			GitCommit: GitCommit,
		})
	}
}
