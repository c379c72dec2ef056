//go:build !linux

package pacmanconf

func getMachine() string {
	return runtimeMachine()
}
