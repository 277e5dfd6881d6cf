// Package bundler invokes the external bundler and the Hermes bytecode compiler.
package bundler

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"

	"go.trai.ch/rnbundle/internal/core/domain"
	"go.trai.ch/rnbundle/internal/core/ports"
	"go.trai.ch/zerr"
)

// BytecodeOutcome is the result of the bytecode step.
type BytecodeOutcome int

const (
	// BytecodeDisabled means the step was not attempted (development mode or explicitly skipped).
	BytecodeDisabled BytecodeOutcome = iota
	// BytecodeCompilerMissing means the compiler binary was not found and the bundle stays plain text.
	BytecodeCompilerMissing
	// BytecodeCompiled means the bundle was overwritten with its compiled form.
	BytecodeCompiled
)

// Compiled reports whether the bundle on disk is bytecode.
func (o BytecodeOutcome) Compiled() bool {
	return o == BytecodeCompiled
}

// Invoker runs the bundler and the bytecode compiler for one build configuration.
type Invoker struct {
	executor ports.Executor
	verifier ports.Verifier
	logger   ports.Logger
}

// NewInvoker creates a new Invoker.
func NewInvoker(executor ports.Executor, verifier ports.Verifier, logger ports.Logger) *Invoker {
	return &Invoker{
		executor: executor,
		verifier: verifier,
		logger:   logger,
	}
}

// BundleInvocation builds the bundler command line for cfg.
func BundleInvocation(cfg domain.BuildConfiguration) domain.Invocation {
	a := cfg.Artifacts()
	command := resolveCommand(cfg.BundlerCommand, cfg.HostOS)

	args := append([]string(nil), command[1:]...)
	args = append(args,
		"--platform", cfg.Platform,
		"--dev", strconv.FormatBool(cfg.Mode.IsDevelopment()),
		"--entry-file", cfg.EntryFile,
		"--bundle-output", a.Bundle,
		"--assets-dest", a.AssetsDir,
		"--sourcemap-output", a.SourceMap,
	)
	if !cfg.Mode.IsDevelopment() {
		args = append(args, "--minify", "true")
	}

	return domain.Invocation{
		Name: "bundler",
		Path: command[0],
		Args: args,
		Dir:  cfg.ProjectRoot,
	}
}

// resolveCommand maps node shims to their Windows launchers, which exec cannot run without
// the .cmd suffix.
func resolveCommand(command []string, goos string) []string {
	if len(command) == 0 {
		command = domain.DefaultBundlerCommand
	}
	command = append([]string(nil), command...)
	if goos == "windows" && filepath.Ext(command[0]) == "" {
		switch command[0] {
		case "npx", "npm", "yarn", "pnpm":
			command[0] += ".cmd"
		}
	}
	return command
}

// Bundle runs the bundler. Any spawn failure or non-zero exit is fatal.
func (i *Invoker) Bundle(ctx context.Context, cfg domain.BuildConfiguration) error {
	inv := BundleInvocation(cfg)

	status, err := i.executor.Run(ctx, inv)
	if err != nil {
		return errors.Join(domain.ErrBundlerFailed, err)
	}
	if !status.Success() {
		return errors.Join(domain.ErrBundlerFailed,
			zerr.With(zerr.New("bundler exited with non-zero status"), "exit_code", int(status)))
	}

	i.logger.Info("Bundle created successfully")
	return nil
}

// CompilerPath resolves the Hermes compiler shipped inside the framework package for goos.
func CompilerPath(projectRoot, goos string) string {
	var bin string
	switch goos {
	case "windows":
		bin = filepath.Join("win64-bin", "hermesc.exe")
	case "darwin":
		bin = filepath.Join("osx-bin", "hermesc")
	default:
		bin = filepath.Join("linux64-bin", "hermesc")
	}
	return filepath.Join(projectRoot, "node_modules", "react-native", "sdks", "hermesc", bin)
}

// CompileInvocation builds the in-place bytecode compilation command for the bundle.
func CompileInvocation(cfg domain.BuildConfiguration, compiler string) domain.Invocation {
	bundle := cfg.Artifacts().Bundle
	return domain.Invocation{
		Name: "hermesc",
		Path: compiler,
		Args: []string{"-emit-binary", "-out", bundle, bundle},
		Dir:  cfg.ProjectRoot,
	}
}

// CompileBytecode compiles the bundle in place when cfg allows it.
//
// A missing compiler binary degrades to a plain-text bundle with a warning. A compiler that
// is present but fails is fatal, so a broken bundle is never shipped.
func (i *Invoker) CompileBytecode(ctx context.Context, cfg domain.BuildConfiguration) (BytecodeOutcome, error) {
	if !cfg.ShouldCompileBytecode() {
		return BytecodeDisabled, nil
	}

	compiler := CompilerPath(cfg.ProjectRoot, cfg.HostOS)
	if !i.verifier.Executable(compiler) {
		i.logger.Warn("Hermes compiler not found at " + compiler + ", skipping Hermes compilation")
		return BytecodeCompilerMissing, nil
	}

	status, err := i.executor.Run(ctx, CompileInvocation(cfg, compiler))
	if err != nil {
		return BytecodeDisabled, errors.Join(domain.ErrBytecodeCompilerFailed, err)
	}
	if !status.Success() {
		return BytecodeDisabled, errors.Join(domain.ErrBytecodeCompilerFailed,
			zerr.With(zerr.With(zerr.New("hermesc exited with non-zero status"), "exit_code", int(status)), "path", compiler))
	}

	i.logger.Info("Hermes bytecode compilation successful")
	return BytecodeCompiled, nil
}
