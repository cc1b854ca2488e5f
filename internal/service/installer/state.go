package installer

import "github.com/sandevgo/deptdir/internal/config"

type InstallState struct {
	RuntimePath string
	Config      config.AppConfig
	EnvPath     string
}

func NewInstallState(runtimePath string, defaults config.AppConfig) *InstallState {
	return &InstallState{
		RuntimePath: runtimePath,
		Config:      defaults,
	}
}
