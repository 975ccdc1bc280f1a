package checker

// Tools holds the host toolchain lookups done once at startup. A nil
// error on a side means that side is runnable.
type Tools struct {
	Python     string
	Compose    []string
	PythonErr  error
	ComposeErr error
}

// DetectTools probes for python and docker compose at their minimum
// supported versions.
func DetectTools() Tools {
	t := Tools{}
	t.Python, t.PythonErr = FindPython(MinPythonVersion)
	t.Compose, t.ComposeErr = FindDockerCompose(MinComposeVersion)
	return t
}

// SolutionReady reports whether solution checks can run.
func (t Tools) SolutionReady() bool {
	return t.PythonErr == nil && t.ComposeErr == nil
}

// DepsReady reports whether dependency checks can run.
func (t Tools) DepsReady() bool {
	return t.PythonErr == nil
}
