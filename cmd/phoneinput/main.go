package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	phoneinput "github.com/goliatone/go-phone-input"
	"github.com/goliatone/go-phone-input/modules/libphonenumber"
)

// envConfig holds defaults read from the environment; flags override them.
type envConfig struct {
	Catalog  string   `env:"PHONEINPUT_CATALOG"`
	Country  string   `env:"PHONEINPUT_COUNTRY" envDefault:"BD"`
	Language string   `env:"PHONEINPUT_LANGUAGE" envDefault:"en"`
	Allowed  []string `env:"PHONEINPUT_ALLOWED" envSeparator:","`
	NoMask   bool     `env:"PHONEINPUT_NO_MASK" envDefault:"false"`
}

type cliConfig struct {
	command  string
	args     []string
	catalog  string
	country  string
	language string
	allowed  []string
	noMask   bool
}

type listFlag struct {
	items []string
}

func (f *listFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *listFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

const usage = `usage: phoneinput <command> [flags] [args]

commands:
  format <digits>      mask national digits for the country
  validate <digits>    report whether the digits form a complete number
  resolve <number>     split a full number into country and national digits
  search <query>       search countries by name, calling code or code
  list                 list selectable countries
  audit                cross-check the catalog against libphonenumber`

func main() {
	if err := run(os.Args[1:], env.ToMap(os.Environ()), os.Stdout); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "phoneinput: %v\n", err)
	os.Exit(1)
}

func parseConfig(args []string, environ map[string]string) (cliConfig, error) {
	if len(args) == 0 {
		return cliConfig{}, errors.New(usage)
	}

	var defaults envConfig
	if err := env.ParseWithOptions(&defaults, env.Options{Environment: environ}); err != nil {
		return cliConfig{}, fmt.Errorf("read environment: %w", err)
	}

	cfg := cliConfig{command: args[0]}
	allowed := listFlag{items: defaults.Allowed}

	fs := flag.NewFlagSet(cfg.command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.catalog, "catalog", defaults.Catalog, "path to a YAML or JSON catalog (defaults to the embedded one)")
	fs.StringVar(&cfg.country, "country", defaults.Country, "selected country code")
	fs.StringVar(&cfg.language, "lang", defaults.Language, "language for country names (en, uk, ru)")
	fs.BoolVar(&cfg.noMask, "no-mask", defaults.NoMask, "disable mask formatting; validate with the country regex")
	fs.Var(&allowed, "allow", "comma separated allow-list of country codes. Repeat flag to add more.")

	if err := fs.Parse(args[1:]); err != nil {
		return cliConfig{}, err
	}

	cfg.allowed = allowed.items
	cfg.args = fs.Args()
	return cfg, nil
}

func run(args []string, environ map[string]string, out io.Writer) error {
	cfg, err := parseConfig(args, environ)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(cfg.catalog)
	if err != nil {
		return err
	}

	input, err := phoneinput.NewInput(catalog,
		phoneinput.WithDefaultCountry(cfg.country),
		phoneinput.WithLanguage(cfg.language),
		phoneinput.WithAllowedCountries(cfg.allowed...),
		phoneinput.WithMask(!cfg.noMask),
	)
	if err != nil {
		return err
	}

	switch cfg.command {
	case "format":
		value, err := requireArg(cfg)
		if err != nil {
			return err
		}
		display := input.ChangeText(value)
		fmt.Fprintf(out, "%s\t%s\n", display, input.FullNumberWithPlus())
	case "validate":
		value, err := requireArg(cfg)
		if err != nil {
			return err
		}
		input.SetValue(value)
		if !input.IsValid() {
			return fmt.Errorf("%q is not a valid %s number", value, input.Country().Code)
		}
		fmt.Fprintf(out, "valid\t%s\n", input.FullNumberWithPlus())
	case "resolve":
		value, err := requireArg(cfg)
		if err != nil {
			return err
		}
		record, national, ok := input.Resolver().Decompose(value)
		if !ok {
			return fmt.Errorf("no country matches %q", value)
		}
		fmt.Fprintf(out, "%s\t+%s\t%s\n", record.Code, record.CallingCode, phoneinput.ApplyMask(national, record.Mask))
	case "search", "list":
		query := strings.Join(cfg.args, " ")
		if cfg.command == "list" {
			query = ""
		}
		for _, record := range input.Resolver().SearchByText(query, input.Language()) {
			fmt.Fprintf(out, "%s\t%s\n", record.Code, record.Label(input.Language()))
		}
	case "audit":
		findings := libphonenumber.Audit(catalog)
		for _, finding := range findings {
			fmt.Fprintln(out, finding.String())
		}
		if len(findings) > 0 {
			return fmt.Errorf("%d catalog findings", len(findings))
		}
	default:
		return fmt.Errorf("unknown command %q\n%s", cfg.command, usage)
	}

	return nil
}

func loadCatalog(path string) (*phoneinput.Catalog, error) {
	if path == "" {
		return phoneinput.DefaultCatalog()
	}
	return phoneinput.NewCatalogFromLoader(phoneinput.NewFileLoader(path))
}

func requireArg(cfg cliConfig) (string, error) {
	if len(cfg.args) == 0 {
		return "", fmt.Errorf("%s: missing argument", cfg.command)
	}
	return strings.Join(cfg.args, ""), nil
}
