package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ntherning/jdeltasync-go/hu01"
)

// CmdCat decodes one or more HU01 files and writes the recovered
// plaintext to stdout, or to --out when given (only valid for a single
// input file).
type CmdCat struct {
	Out string `short:"o" long:"out" description:"Write decoded output here instead of stdout (single file only)"`

	Args struct {
		Files []string `positional-arg-name:"file" required:"1" description:"HU01 file(s) to decode"`
	} `positional-args:"yes"`
}

// Execute runs the cat command.
func (c *CmdCat) Execute(args []string) error {
	if c.Out != "" && len(c.Args.Files) > 1 {
		return fmt.Errorf("--out requires exactly one input file")
	}
	for _, path := range c.Args.Files {
		if err := catOne(path, c.Out); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func catOne(path, out string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Writer.Close closes a sink that implements io.Closer; stdout is
	// wrapped so that it stays open for the next input file.
	var sink io.Writer = struct{ io.Writer }{os.Stdout}
	if out != "" {
		of, err := os.Create(out)
		if err != nil {
			return err
		}
		defer of.Close()
		sink = of
	}

	w := hu01.NewWriter(sink)
	if _, err := io.Copy(w, f); err != nil {
		return err
	}
	return w.Close()
}
