package cli

import (
	"fmt"
	"os"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

// CmdBatch decodes every job listed in a YAML config file, mirroring the
// single-config "build many projects" shape of a packing tool's batch
// command.
type CmdBatch struct {
	Args struct {
		Config string `positional-arg-name:"config" required:"1" description:"Path to a YAML batch config"`
	} `positional-args:"yes"`
}

// batchJob is one decode job: an input HU01 file and where to write its
// recovered plaintext.
type batchJob struct {
	Input string `yaml:"input"`
	Out   string `yaml:"out" default:""`
}

// Execute runs the batch command.
func (c *CmdBatch) Execute(args []string) error {
	data, err := os.ReadFile(c.Args.Config)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var doc struct {
		Jobs []batchJob `yaml:"jobs"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if len(doc.Jobs) == 0 {
		return fmt.Errorf("no jobs found in %q", c.Args.Config)
	}

	for i := range doc.Jobs {
		if err := defaults.Set(&doc.Jobs[i]); err != nil {
			return fmt.Errorf("apply defaults: %w", err)
		}
		job := doc.Jobs[i]
		if job.Out == "" {
			job.Out = job.Input + ".txt"
		}
		if err := catOne(job.Input, job.Out); err != nil {
			return fmt.Errorf("%s: %w", job.Input, err)
		}
	}
	return nil
}
