// Package config resolves bundle options from command-line flags and an optional config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/drengskapur/bundler/pkg/bundle"
)

// Flag names shared by the bundle command and the config file keys.
const (
	OutputKey             = "output"
	LanguageKey           = "language"
	NoteKey               = "note"
	SortKey               = "sort"
	RemoveEmptyLinesKey   = "remove-empty-lines"
	PreserveLineBreaksKey = "preserve-line-breaks"
	AuthorKey             = "author"
	ConfigFileKey         = "config"
)

// ErrOutputRequired is returned when neither a flag nor the config file names an output path.
var ErrOutputRequired = errors.New(`required flag "output" not set`)

// RegisterBundleFlags defines the bundle command's flags on flags.
func RegisterBundleFlags(flags *pflag.FlagSet) {
	flags.StringP(OutputKey, "o", "", "File path and name")
	flags.StringSliceP(LanguageKey, "l", nil, `List of file extensions to bundle, or "all"`)
	flags.BoolP(NoteKey, "n", false, "Add a note with the name and location of each file")
	flags.StringP(SortKey, "s", bundle.SortByNameToken, "Sort files by name (abc) or language")
	flags.BoolP(RemoveEmptyLinesKey, "r", false, "Remove empty lines from code before bundling")
	flags.Bool(PreserveLineBreaksKey, false, "Keep line breaks between lines retained by --remove-empty-lines")
	flags.StringP(AuthorKey, "a", "", "Add author")
	flags.String(ConfigFileKey, "", "Read default option values from this file (yaml, json or toml)")
}

// ResolveBundleOptions merges flags with the optional config file named by --config.
// Flags set on the command line win over the file; the file wins over flag defaults.
// Positional arguments are treated as additional selectors.
func ResolveBundleOptions(flags *pflag.FlagSet, positional []string) (bundle.Options, error) {
	reader := viper.New()

	configPath, err := flags.GetString(ConfigFileKey)
	if err != nil {
		return bundle.Options{}, fmt.Errorf("error reading flags: %w", err)
	}
	if configPath != "" {
		if err := readConfigFile(reader, configPath); err != nil {
			return bundle.Options{}, err
		}
	}

	if err := reader.BindPFlags(flags); err != nil {
		return bundle.Options{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	options := bundle.Options{
		Output:             reader.GetString(OutputKey),
		Selectors:          splitSelectors(append(reader.GetStringSlice(LanguageKey), positional...)),
		Note:               reader.GetBool(NoteKey),
		Sort:               bundle.ParseSortMode(reader.GetString(SortKey)),
		RemoveEmptyLines:   reader.GetBool(RemoveEmptyLinesKey),
		PreserveLineBreaks: reader.GetBool(PreserveLineBreaksKey),
		Author:             reader.GetString(AuthorKey),
	}
	if options.Output == "" {
		return bundle.Options{}, ErrOutputRequired
	}
	return options, nil
}

func readConfigFile(reader *viper.Viper, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat configuration %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("configuration path %s is a directory", path)
	}
	reader.SetConfigFile(path)
	if err := reader.ReadInConfig(); err != nil {
		return fmt.Errorf("read configuration from %s: %w", path, err)
	}
	return nil
}

// splitSelectors flattens comma- and space-separated selector tokens, dropping blanks.
// Order and duplicates are preserved.
func splitSelectors(values []string) []string {
	var selectors []string
	for _, value := range values {
		for _, token := range strings.FieldsFunc(value, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		}) {
			selectors = append(selectors, token)
		}
	}
	return selectors
}
