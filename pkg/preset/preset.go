// Package preset persists a collected job configuration as YAML so that
// the render command can reproduce a run without prompting.
package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/config"
)

// Load reads a preset file into a Job. Fields absent from the file keep
// their zero values; the preset is explicit, no defaults are filled in.
func Load(path string) (config.Job, error) {
	var job config.Job
	data, err := os.ReadFile(path)
	if err != nil {
		return job, fmt.Errorf("failed to read preset %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &job); err != nil {
		return job, fmt.Errorf("failed to parse preset %s: %w", path, err)
	}
	if job.Variant == config.GOATEntropy && job.Entropy == nil {
		return job, fmt.Errorf("preset %s: variant GOAT-ENTROPY requires an entropy section", path)
	}
	if job.Variant == config.GOATExplore && job.Explore == nil {
		return job, fmt.Errorf("preset %s: variant GOAT-EXPLORE requires an explore section", path)
	}
	return job, nil
}

// Save writes the job configuration as YAML.
func Save(path string, job config.Job) error {
	data, err := yaml.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preset %s: %w", path, err)
	}
	return nil
}
