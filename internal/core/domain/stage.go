package domain

import "strings"

// Stage is a state of the build pipeline.
type Stage string

const (
	// StageInit prepares the output directory.
	StageInit Stage = "init"
	// StageBundling runs the bundler.
	StageBundling Stage = "bundling"
	// StageBytecodeCompiling runs the bytecode compiler over the bundle.
	StageBytecodeCompiling Stage = "bytecode-compiling"
	// StageBytecodeSkipped records that the bundle ships as plain text.
	StageBytecodeSkipped Stage = "bytecode-skipped"
	// StageMetadataGenerating writes metadata.json.
	StageMetadataGenerating Stage = "metadata-generating"
	// StageSummarizing reports artifact paths and sizes.
	StageSummarizing Stage = "summarizing"
	// StageDone is the successful terminal state.
	StageDone Stage = "done"
	// StageFailed is the failed terminal state.
	StageFailed Stage = "failed"
)

// IsTerminal reports whether no further transition is possible.
func (s Stage) IsTerminal() bool {
	return s == StageDone || s == StageFailed
}

// Title returns a human readable label for logs.
func (s Stage) Title() string {
	switch s {
	case StageInit:
		return "Preparing output directory"
	case StageBundling:
		return "Running bundler"
	case StageBytecodeCompiling:
		return "Compiling Hermes bytecode"
	case StageBytecodeSkipped:
		return "Skipping Hermes compilation"
	case StageMetadataGenerating:
		return "Generating metadata"
	case StageSummarizing:
		return "Summarizing artifacts"
	default:
		return strings.ToUpper(string(s[:1])) + string(s[1:])
	}
}

var transitions = map[Stage][]Stage{
	StageInit:               {StageBundling, StageFailed},
	StageBundling:           {StageBytecodeCompiling, StageBytecodeSkipped, StageFailed},
	StageBytecodeCompiling:  {StageMetadataGenerating, StageFailed},
	StageBytecodeSkipped:    {StageMetadataGenerating},
	StageMetadataGenerating: {StageSummarizing, StageFailed},
	StageSummarizing:        {StageDone},
}

// CanTransition reports whether the pipeline may move from s to next.
// BytecodeCompiling may continue to MetadataGenerating when the compiler is absent.
func (s Stage) CanTransition(next Stage) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
