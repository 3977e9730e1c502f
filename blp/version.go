package blp

import (
	"runtime/debug"
	"strings"
	"sync"
)

const repoName = "github.com/marketdatahq/blpdata-go"

var (
	goVersion     string
	moduleVersion string
	once          = sync.Once{}
)

// GetVersion returns the running go version and the blpdata-go version
func GetVersion() (string, string) {
	once.Do(func() {
		buildInfo, found := debug.ReadBuildInfo()
		if !found {
			return
		}
		goVersion = buildInfo.GoVersion

		for _, dep := range buildInfo.Deps {
			if strings.HasPrefix(dep.Path, repoName) {
				moduleVersion = dep.Version
				return
			}
		}
	})
	return goVersion, moduleVersion
}
