package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/log"
)

func checkSignatureSubcommand(args []string, logger log.DebugLogger) error {
	h, err := getHandle(logger)
	if err != nil {
		return err
	}
	if numFailed := checkSignatures(os.Stdout, h, args); numFailed > 0 {
		return fmt.Errorf("%d of %d packages failed verification",
			numFailed, len(args))
	}
	return nil
}

func checkSignatures(writer io.Writer, h *alpm.Handle,
	filenames []string) int {
	var numFailed int
	for _, filename := range filenames {
		pkg, err := h.LoadPackage(filename, false, alpm.SigUseDefault)
		if err != nil {
			fmt.Fprintf(writer, "%s: %s\n", filename, err)
			numFailed++
		} else if pkg.Signed {
			fmt.Fprintf(writer, "%s: signature OK\n", filename)
		} else {
			fmt.Fprintf(writer, "%s: unsigned, accepted by %s\n", filename,
				h.Params().LocalFileSigLevel)
		}
	}
	return numFailed
}
