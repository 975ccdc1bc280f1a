package checker

import (
	"fmt"
	"os/exec"
	"regexp"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/mod/semver"
)

// Minimum tool versions a workshop environment needs.
const (
	MinPythonVersion  = "3.8.0"
	MinComposeVersion = "2.0.0"
)

// ToolNotFoundError reports that no candidate executable satisfied the
// minimum version.
type ToolNotFoundError struct {
	Tool       string
	MinVersion string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("%s >= %s not found", e.Tool, e.MinVersion)
}

// FindPython locates a python executable at or above minVersion.
func FindPython(minVersion string) (string, error) {
	candidates := []string{"python3", "python", "py"}
	if runtime.GOOS != "windows" {
		candidates = append(candidates, "/usr/bin/python3", "/usr/local/bin/python3")
	}
	for _, name := range candidates {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		out, err := exec.Command(path, "--version").CombinedOutput()
		if err != nil {
			continue
		}
		v, ok := parseVersion(string(out))
		if !ok || semver.Compare(v, "v"+minVersion) < 0 {
			log.Debug("python candidate rejected", "path", path, "version", v)
			continue
		}
		log.Debug("python found", "path", path, "version", v)
		return path, nil
	}
	return "", &ToolNotFoundError{Tool: "python", MinVersion: minVersion}
}

// FindDockerCompose locates a compose command at or above minVersion:
// the standalone docker-compose binary or the docker compose plugin.
// The returned argv prefix is ready to have subcommands appended.
func FindDockerCompose(minVersion string) ([]string, error) {
	candidates := [][]string{{"docker-compose"}, {"docker", "compose"}}
	for _, argv := range candidates {
		path, err := exec.LookPath(argv[0])
		if err != nil {
			continue
		}
		args := append(append([]string{}, argv[1:]...), "version")
		out, err := exec.Command(path, args...).CombinedOutput()
		if err != nil {
			continue
		}
		v, ok := parseVersion(string(out))
		if !ok || semver.Compare(v, "v"+minVersion) < 0 {
			log.Debug("compose candidate rejected", "argv", argv, "version", v)
			continue
		}
		log.Debug("docker compose found", "argv", argv, "version", v)
		return argv, nil
	}
	return nil, &ToolNotFoundError{Tool: "docker compose", MinVersion: minVersion}
}

var versionRe = regexp.MustCompile(`v?(\d+)\.(\d+)(?:\.(\d+))?`)

// parseVersion extracts the first dotted version in s as a canonical
// semver string ("v3.12.1"). Tools print it in different shapes:
// "Python 3.12.1", "Docker Compose version v2.24.5".
func parseVersion(s string) (string, bool) {
	m := versionRe.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	patch := m[3]
	if patch == "" {
		patch = "0"
	}
	v := "v" + m[1] + "." + m[2] + "." + patch
	if !semver.IsValid(v) {
		return "", false
	}
	return v, true
}
