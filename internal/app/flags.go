package app

import (
	"github.com/spf13/pflag"

	"github.com/RexarX/Contexto/internal/config"
)

// ConvertFlags holds the command-line flags shared by the converter tools.
type ConvertFlags struct {
	Output     string
	ConfigPath string
	MinLength  int
	Verbose    bool
	Encoding   string
	Blacklist  string
	Analyzer   string
	Lexicon    string
	Publish    bool
	Version    bool

	// Tagging path only.
	POS    string
	Dedupe bool

	fs *pflag.FlagSet
}

// RegisterConvertFlags defines the converter flags on fs. The tagging-only
// flags are registered when tagging is set.
func RegisterConvertFlags(fs *pflag.FlagSet, tagging bool) *ConvertFlags {
	f := &ConvertFlags{fs: fs}
	fs.StringVarP(&f.Output, "output", "o", "", "output file (default: <input>_processed<ext>)")
	fs.IntVarP(&f.MinLength, "min-length", "m", 2, "minimum word length in characters")
	fs.BoolVarP(&f.Verbose, "verbose", "v", false, "log progress and skipped words")
	fs.StringVar(&f.ConfigPath, "config", "", "path to YAML config file (default: $"+config.PathEnv+")")
	fs.StringVar(&f.Encoding, "encoding", "", "input encoding label, e.g. windows-1251")
	fs.StringVar(&f.Blacklist, "blacklist", "", "file with words to drop, one per line")
	fs.StringVar(&f.Analyzer, "analyzer", "", "analyzer kind: lexicon, http or exec")
	fs.StringVar(&f.Lexicon, "lexicon", "", "TSV lexicon for the lexicon analyzer")
	fs.BoolVar(&f.Publish, "publish", false, "store the run in PostgreSQL")
	fs.BoolVar(&f.Version, "version", false, "print version and exit")
	if tagging {
		fs.StringVar(&f.POS, "pos", "", "comma-separated tags to keep, e.g. NOUN,VERB (default: all)")
		fs.BoolVar(&f.Dedupe, "dedupe", false, "drop repeated word_TAG lines")
	}
	return f
}

// Apply overrides cfg with the flags that were set explicitly.
func (f *ConvertFlags) Apply(cfg *config.Config) {
	if f.changed("min-length") {
		cfg.Converter.MinLength = f.MinLength
	}
	if f.Encoding != "" {
		cfg.Converter.Encoding = f.Encoding
	}
	if f.Blacklist != "" {
		cfg.Converter.BlacklistPath = f.Blacklist
	}
	if f.Analyzer != "" {
		cfg.Analyzer.Kind = f.Analyzer
	}
	if f.Lexicon != "" {
		cfg.Analyzer.LexiconPath = f.Lexicon
	}
	if f.Verbose {
		cfg.Log.Level = "debug"
	}
}

func (f *ConvertFlags) changed(name string) bool {
	return f.fs != nil && f.fs.Changed(name)
}
