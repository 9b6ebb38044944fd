package render

import (
	"fmt"
	"strings"

	"github.com/Chemical-Biology-STP/orca-goat-generator/pkg/config"
)

// InputFileName returns "<base>_<variant_slug>.inp".
func InputFileName(base string, v config.Variant) string {
	return base + "_" + v.Slug() + ".inp"
}

// ScriptFileName returns "run_<base>_<variant_slug>.sh".
func ScriptFileName(base string, v config.Variant) string {
	return "run_" + base + "_" + v.Slug() + ".sh"
}

// OutputLogName returns "<base>_<variant_slug>.out", the ORCA stdout log.
func OutputLogName(base string, v config.Variant) string {
	return base + "_" + v.Slug() + ".out"
}

// JobName returns the scheduler job name "<base>_<variant_slug>".
func JobName(base string, v config.Variant) string {
	return base + "_" + v.Slug()
}

func boolWord(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// InputFile renders the complete ORCA input for one geometry. Output is a
// pure function of the job configuration, the base name and the geometry
// path; the fragments are assembled in fixed order.
func InputFile(job config.Job, base, xyzPath string) string {
	var b strings.Builder
	b.WriteString(headerFragment(job, base))
	b.WriteString(directiveFragment(job))
	b.WriteString(palFragment(job))
	b.WriteString(goatFragment(job))
	b.WriteString(geomFragment(job))
	b.WriteString(footerFragment(job, xyzPath))
	return b.String()
}

func headerFragment(job config.Job, base string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# ORCA %s Input File for %s\n", job.Variant.Keyword(), base)
	b.WriteString("# Generated for cyclic peptide conformational search\n")
	b.WriteString("# Objective: Generate structurally diverse conformations without breaking topology\n")
	fmt.Fprintf(&b, "# Configured for %s CPU cores\n\n", job.NProcs)
	return b.String()
}

func directiveFragment(job config.Job) string {
	return fmt.Sprintf("! %s %s %s %s\n\n", job.Variant.Keyword(), job.Method, job.SolventKeyword, job.ExtraKeywords)
}

func palFragment(job config.Job) string {
	return fmt.Sprintf("%%pal\n  nprocs %s\nend\n\n", job.NProcs)
}

func goatFragment(job config.Job) string {
	var b strings.Builder
	b.WriteString("%goat\n")
	fmt.Fprintf(&b, "  NWORKERS %s             # Number of parallel workers\n", job.NWorkers)
	fmt.Fprintf(&b, "  MAXCORESOPT %s       # Max cores per optimization\n", job.MaxCoresOpt)
	fmt.Fprintf(&b, "  MAXITER %s               # Maximum global iterations\n", job.MaxIter)
	fmt.Fprintf(&b, "  MINGLOBALITER %s   # Minimum global iterations\n", job.MinGlobalIter)
	fmt.Fprintf(&b, "  MAXEN %s                   # Maximum relative energy (kcal/mol)\n", job.MaxEn)
	fmt.Fprintf(&b, "  KEEPWORKERDATA %s # Keep worker output files\n", boolWord(job.KeepWorkerData))
	fmt.Fprintf(&b, "  CONFTEMP %s             # Temperature for Boltzmann populations (K)\n", job.ConfTemp)

	if job.Variant == config.GOATEntropy && job.Entropy != nil {
		b.WriteString("  MAXENTROPY true                  # Use delta Gconf as convergence criteria\n")
		fmt.Fprintf(&b, "  MINDELS %s               # Minimum entropy difference (cal/mol/K)\n", job.Entropy.MinDelS)
		fmt.Fprintf(&b, "  CONFDEGEN %s           # Rotamer degeneracy handling\n", job.Entropy.ConfDegen)
	}

	if job.Variant == config.GOATExplore && job.Explore != nil {
		fmt.Fprintf(&b, "  FREEZEBONDS %s       # Freeze bonds during uphill step\n", boolWord(job.Explore.FreezeBonds))
		fmt.Fprintf(&b, "  FREEZEANGLES %s     # Freeze sp2 angles and dihedrals\n", boolWord(job.Explore.FreezeAngles))
	}

	if job.FreezeAmides {
		b.WriteString("  FREEZEAMIDES true                # Preserve amide bond chirality (cis/trans)\n")
	}
	if job.FreezeCisTrans {
		b.WriteString("  FREEZECISTRANS true              # Preserve double bond stereochemistry\n")
	}
	if job.GFNUphill != "" {
		fmt.Fprintf(&b, "  GFNUPHILL %s    # Use faster method for uphill steps\n", job.GFNUphill)
	}

	b.WriteString("end\n\n")
	return b.String()
}

func geomFragment(job config.Job) string {
	var b strings.Builder
	b.WriteString("%geom\n")
	fmt.Fprintf(&b, "  MaxIter %s\n", job.GeomMaxIter)
	fmt.Fprintf(&b, "  TolE %s\n", job.GeomTolE)
	fmt.Fprintf(&b, "  TolRMSG %s\n", job.GeomTolRMSG)
	fmt.Fprintf(&b, "  TolMaxG %s\n", job.GeomTolMaxG)
	b.WriteString("end\n\n")
	return b.String()
}

func footerFragment(job config.Job, xyzPath string) string {
	return fmt.Sprintf("* xyzfile %s %s %s\n\n", job.Charge, job.Mult, xyzPath)
}
