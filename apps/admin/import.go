package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

func (cli *commandLine) importRoster(path, class string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening roster")
	}
	defer func() { _ = f.Close() }()

	n, preview, err := cli.importSvc.ImportFile(f, class, nil)
	if err != nil {
		return errors.Wrap(err, "importing roster")
	}

	format := "generic"
	if preview.Massar {
		format = "massar"
	}
	fmt.Printf("imported %d students (%s sheet)\n", n, format)
	return nil
}
