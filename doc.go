// File: lixenwraith/compileropts/doc.go

// Package compileropts turns the processor options of a compiler invocation
// (-Akey=value, -Akey) into typed, validated settings.
//
// Option kinds:
//   - Key-only options are on when their key is present, whatever the value.
//   - Features are ENABLED or DISABLED, each with its own default.
//   - Validations are ERROR, WARNING or NONE (or a subset), each with its own
//     default, and usually map to the severity of a diagnostic.
//
// Features and validations are named "dagger." followed by the identifier in
// lower camel case, so FAST_INIT is passed as -Adagger.fastInit=enabled.
// Values are case insensitive.
//
// Quick Start:
//
//	bag := diag.NewBag(0)
//	opts, err := compileropts.NewBuilder().
//	    WithArgs(os.Args[1:]).
//	    WithFile("compileropts.toml").
//	    WithReporter(bag).
//	    Build()
//	if err != nil && !errors.Is(err, compileropts.ErrOptionsFileNotFound) {
//	    log.Fatal(err)
//	}
//	if bag.HasErrors() {
//	    os.Exit(1)
//	}
//	if opts.FastInit() {
//	    // ...
//	}
//
// Bad values never stop resolution: the option falls back to its default and
// an ERROR diagnostic names the option, the value found and the accepted
// values. Construction resolves every option up front so that all problems
// are reported in the same run. Options that were removed only produce a
// WARNING.
//
// Default Precedence (highest to lowest):
//  1. Command-line arguments (-Adagger.fastInit=enabled)
//  2. Environment variables, when enabled (APT_DAGGER_FASTINIT=enabled)
//  3. Options file (compileropts.toml)
//  4. Default values
//
// Thread Safety:
// A CompilerOptions may be read from several goroutines. Each option is
// resolved under a mutex, so its diagnostics are still reported once.
// Reporters must not call back into the CompilerOptions that reports to them.
package compileropts
