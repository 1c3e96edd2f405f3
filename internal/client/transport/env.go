package transport

import "os"

// Env identifies the execution environment the client runs in.
type Env int

const (
	// EnvWeb is the plain Go HTTP stack (browser-equivalent).
	EnvWeb Env = iota
	// EnvMobileShell is the packaged mobile application shell (bridge A).
	EnvMobileShell
	// EnvDesktopShell is the packaged desktop application shell (bridge B).
	EnvDesktopShell
)

func (e Env) String() string {
	switch e {
	case EnvMobileShell:
		return "mobile"
	case EnvDesktopShell:
		return "desktop"
	default:
		return "web"
	}
}

// ShellEnvVar is the environment variable the application shells set to
// announce themselves.
const ShellEnvVar = "ZMNG_SHELL"

// DetectEnv resolves the current environment. It is a pure function of the
// process environment and is consulted once per call, never cached, so the
// environment can change between calls without a restart.
func DetectEnv() Env {
	switch os.Getenv(ShellEnvVar) {
	case "mobile":
		return EnvMobileShell
	case "desktop":
		return EnvDesktopShell
	default:
		return EnvWeb
	}
}
