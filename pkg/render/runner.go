package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/config"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/console"
	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/xyzset"
)

// Runner renders the full output set for one job configuration: per
// geometry an input file and a submission script, then the shared
// submit-all helper. Rendering is sequential; on the first failure the
// error propagates and files already written stay in place.
type Runner struct {
	Out io.Writer
}

func (r *Runner) say(line string) {
	fmt.Fprintln(r.Out, line)
}

// RenderAll writes all outputs into job.OutputDir and returns the path of
// the submit-all helper.
func (r *Runner) RenderAll(job config.Job, files []xyzset.File) (string, error) {
	outDir := job.OutputDir
	log.Debug().Str("variant", job.Variant.Keyword()).Str("outputDir", outDir).Int("files", len(files)).Msg("render run start")

	r.say(console.Info("=== Generating Files ==="))
	for _, f := range files {
		r.say("")
		r.say(console.Infof("Processing: %s", f.Name()))
		if err := r.renderOne(job, f); err != nil {
			return "", err
		}
	}

	submitPath := filepath.Join(outDir, SubmitAllName)
	if err := WriteScript(submitPath, SubmitAllScript()); err != nil {
		return "", err
	}
	return submitPath, nil
}

func (r *Runner) renderOne(job config.Job, f xyzset.File) error {
	base := f.Base()

	inpPath := filepath.Join(job.OutputDir, InputFileName(base, job.Variant))
	r.say(console.Infof("Generating input file: %s", inpPath))
	if err := WriteFile(inpPath, InputFile(job, base, f.Path)); err != nil {
		return err
	}
	r.say(console.Successf("Created: %s", inpPath))

	scriptPath := filepath.Join(job.OutputDir, ScriptFileName(base, job.Variant))
	r.say(console.Infof("Generating sbatch script: %s", scriptPath))
	script, err := SubmissionScript(job, base)
	if err != nil {
		return err
	}
	if err := WriteScript(scriptPath, script); err != nil {
		return err
	}
	r.say(console.Successf("Created: %s", scriptPath))
	return nil
}
