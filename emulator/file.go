package emulator

import (
	"os"

	"github.com/pkg/errors"
)

// RunFile executes the program stored at path.
func (emu *Emulator) RunFile(path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		err = errors.Wrapf(err, "open program")
		return
	}
	defer inf.Close()

	err = emu.Run(inf)
	if err != nil {
		err = errors.Wrapf(err, "%v", path)
	}

	return
}
