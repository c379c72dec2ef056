package pacmanconf

import (
	"runtime"
)

var goarchToMachine = map[string]string{
	"386":   "i686",
	"amd64": "x86_64",
	"arm64": "aarch64",
}

func runtimeMachine() string {
	if machine, ok := goarchToMachine[runtime.GOARCH]; ok {
		return machine
	}
	return runtime.GOARCH
}
