// litdec decodes source-level literal tokens to their canonical values.
//
// Usage:
//
//	litdec decode [--as kind] [--json] [literal ...]   Decode literals
//	litdec seq [literal ...]                           Print element sequences
//
// If no literals are given, one literal per line is read from stdin.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/andrewpillar/lit"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func initLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}

	logger := zerolog.New(output).With().Timestamp().Str("app", "litdec").Logger()

	if verbose {
		return logger.Level(zerolog.DebugLevel)
	}
	return logger.Level(zerolog.InfoLevel)
}

type result struct {
	Text  string `json:"text"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

func wrap[T lit.Target](kind lit.Kind) func(string) (result, error) {
	return func(text string) (result, error) {
		v, err := lit.Decode[T](text)

		if err != nil {
			return result{}, err
		}

		return result{
			Text:  text,
			Kind:  kind.String(),
			Value: fmt.Sprintf("%v", v),
		}, nil
	}
}

var targets = map[string]func(string) (result, error){
	"i8":    wrap[int8](lit.IntLit),
	"i16":   wrap[int16](lit.IntLit),
	"i32":   wrap[int32](lit.IntLit),
	"i64":   wrap[int64](lit.IntLit),
	"isize": wrap[int](lit.IntLit),
	"u8":    wrap[uint8](lit.IntLit),
	"u16":   wrap[uint16](lit.IntLit),
	"u32":   wrap[uint32](lit.IntLit),
	"u64":   wrap[uint64](lit.IntLit),
	"usize": wrap[uint](lit.IntLit),
	"f32":   wrap[float32](lit.FloatLit),
	"f64":   wrap[float64](lit.FloatLit),
	"char":  wrap[lit.Char](lit.CharLit),
	"str":   wrap[string](lit.StringLit),
	"bytes": wrap[lit.Bytes](lit.ByteStringLit),
	"cstr":  wrap[lit.CString](lit.CStringLit),
}

func targetNames() []string {
	names := make([]string, 0, len(targets)+1)

	for name := range targets {
		names = append(names, name)
	}

	names = append(names, "auto")
	sort.Strings(names)
	return names
}

func decodeOne(as, text string) (result, error) {
	if as == "" || as == "auto" {
		v, err := lit.Parse(text)

		if err != nil {
			return result{}, err
		}

		return result{
			Text:  text,
			Kind:  v.Kind.String(),
			Value: v.String(),
		}, nil
	}

	fn, ok := targets[as]

	if !ok {
		return result{}, fmt.Errorf("unknown target kind %q, want one of %s", as, strings.Join(targetNames(), ", "))
	}
	return fn(text)
}

// literals returns the command arguments, or one literal per stdin line when
// no arguments are given.
func literals(c *cli.Context) ([]string, error) {
	if c.Args().Len() > 0 {
		return c.Args().Slice(), nil
	}

	var texts []string

	sc := bufio.NewScanner(os.Stdin)

	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			texts = append(texts, line)
		}
	}
	return texts, sc.Err()
}

func decodeAction(c *cli.Context) error {
	logger := initLogger(c.Bool("verbose"))

	cfg, err := loadConfig(c.String("config"))

	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	as := c.String("as")

	if as == "" {
		as = cfg.DefaultType
	}

	asJSON := c.Bool("json") || cfg.JSON

	texts, err := literals(c)

	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	enc := json.NewEncoder(os.Stdout)
	failed := 0

	for _, text := range texts {
		res, err := decodeOne(as, text)

		if err != nil {
			logger.Error().Str("literal", text).Err(err).Msg("decode failed")
			failed++
			continue
		}

		logger.Debug().Str("literal", text).Str("kind", res.Kind).Msg("decoded")

		if asJSON {
			if err := enc.Encode(res); err != nil {
				return cli.Exit(err.Error(), 1)
			}
			continue
		}
		fmt.Printf("%s\t%s\n", res.Kind, res.Value)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("litdec: %d literal(s) failed to decode", failed), 1)
	}
	return nil
}

func seqAction(c *cli.Context) error {
	logger := initLogger(c.Bool("verbose"))

	texts, err := literals(c)

	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	failed := 0

	for _, text := range texts {
		v, err := lit.Parse(text)

		if err != nil {
			logger.Error().Str("literal", text).Err(err).Msg("decode failed")
			failed++
			continue
		}

		s, ok := v.Seq()

		if !ok {
			logger.Error().Str("literal", text).Msg("no sequence form for this kind")
			failed++
			continue
		}

		parts := make([]string, 0, s.Len())

		for i := 0; i < s.Len(); i++ {
			e := s.At(i)

			switch e.Kind {
			case lit.CharElem:
				parts = append(parts, fmt.Sprintf("%q", rune(e.Val)))
			default:
				parts = append(parts, fmt.Sprintf("%d", e.Val))
			}
		}
		fmt.Printf("%s\t[%s]\n", v.Kind, strings.Join(parts, " "))
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("litdec: %d literal(s) failed to decode", failed), 1)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:  "litdec",
		Usage: "decode source literal tokens to canonical values",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a litdec.toml with defaults",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     "decode literals to canonical values",
				ArgsUsage: "[literal ...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "as",
						Usage: "target kind: " + strings.Join(targetNames(), ", "),
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "emit one JSON object per literal",
					},
				},
				Action: decodeAction,
			},
			{
				Name:      "seq",
				Usage:     "print the element sequence of each literal",
				ArgsUsage: "[literal ...]",
				Action:    seqAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
