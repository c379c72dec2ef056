package pacmanconf

import (
	"golang.org/x/sys/unix"
)

func getMachine() string {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return runtimeMachine()
	}
	return unix.ByteSliceToString(utsname.Machine[:])
}
