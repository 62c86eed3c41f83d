package main

import (
	"fmt"
	"io"
	"os"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/reoring/pj"
	"github.com/reoring/pj/internal/config"
)

const usageLine = "Usage: pj [flags] <file_name>"

var (
	log = logger.GetOrCreate("pj")

	indentFlag = cli.IntFlag{
		Name:  "indent",
		Usage: "Number of spaces per indentation level",
		Value: len(pj.DefaultIndent),
	}
	compactFlag = cli.BoolFlag{
		Name:  "compact",
		Usage: "Emit the document without insignificant whitespace",
	}
	maxDepthFlag = cli.IntFlag{
		Name:  "max-depth",
		Usage: "Maximum nesting depth of arrays and objects",
		Value: pj.DefaultMaxDepth,
	}
	strictKeysFlag = cli.BoolFlag{
		Name:  "strict-keys",
		Usage: "Reject objects with duplicate keys instead of keeping the last value",
	}
	warnKeysFlag = cli.BoolFlag{
		Name:  "warn-keys",
		Usage: "Log a warning for every duplicate key",
	}
	driverFlag = cli.StringFlag{
		Name:  "driver",
		Usage: "Token source driver: native or go-json",
		Value: config.DriverNative,
	}
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "YAML or TOML file with default settings",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "Logger level pattern, e.g. *:DEBUG",
		Value: "*:INFO",
	}
)

func main() {
	err := logger.RemoveLogObserver(os.Stdout)
	if err == nil {
		err = logger.AddLogObserver(os.Stderr, &logger.PlainFormatter{})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot redirect logger:", err.Error())
	}

	app := newApp(os.Stdin, os.Stdout)
	app.ErrWriter = os.Stderr
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "pj"
	app.Usage = "pretty-print a JSON document"
	app.UsageText = "pj [flags] <file_name>"
	app.Version = "v0.1.0"
	app.Writer = stdout
	app.Flags = []cli.Flag{
		indentFlag,
		compactFlag,
		maxDepthFlag,
		strictKeysFlag,
		warnKeysFlag,
		driverFlag,
		configFlag,
		logLevelFlag,
	}
	app.Action = func(c *cli.Context) error {
		return prettyPrint(c, stdin, stdout)
	}
	return app
}

func prettyPrint(c *cli.Context, stdin io.Reader, stdout io.Writer) error {
	if c.NArg() != 1 {
		return errors.New("Error: expected single input file name\n" + usageLine)
	}
	name := c.Args().First()
	if name == "" {
		return errors.New("Error: File name required\n" + usageLine)
	}

	cfg, err := settings(c)
	if err != nil {
		return err
	}
	if err = logger.SetLogLevel(cfg.LogLevel); err != nil {
		return errors.Wrap(err, "Error: invalid log level")
	}
	codec, err := cfg.Codec()
	if err != nil {
		return errors.Wrap(err, "Error")
	}
	log.Debug("settings", "driver", codec.Driver.Name(), "max depth", cfg.MaxDepth, "compact", cfg.Compact)

	input, err := readInput(name, stdin)
	if err != nil {
		return fmt.Errorf("Error: Unable to read file (%s)", err.Error())
	}

	v, warns, err := codec.DecodeWithWarnings(input)
	if err != nil {
		if e, ok := pj.AsError(err); ok {
			log.Debug("decode failed", "code", e.Code, "offset", e.Offset, "path", e.Path)
		}
		return fmt.Errorf("Error: Unable to deserialize input (%s):\n%s", err.Error(), input)
	}
	for _, w := range warns {
		log.Warn(w.Message, "line", w.Line, "column", w.Column, "path", w.Path)
	}
	out, err := codec.Encode(v)
	if err != nil {
		return fmt.Errorf("Error: Unable to prettify JSON (%s):\n%s", err.Error(), v.String())
	}
	_, err = stdout.Write(out)
	return err
}

// settings merges the optional config file with the flags set on the command
// line; flags win.
func settings(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.String(configFlag.Name); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return cfg, errors.Wrap(err, "Error: Unable to load config")
		}
		log.Debug("config loaded", "file", path)
	}
	if c.IsSet(indentFlag.Name) {
		cfg.Indent = c.Int(indentFlag.Name)
	}
	if c.IsSet(compactFlag.Name) {
		cfg.Compact = c.Bool(compactFlag.Name)
	}
	if c.IsSet(maxDepthFlag.Name) {
		cfg.MaxDepth = c.Int(maxDepthFlag.Name)
	}
	if c.IsSet(strictKeysFlag.Name) {
		cfg.StrictKeys = c.Bool(strictKeysFlag.Name)
	}
	if c.IsSet(warnKeysFlag.Name) {
		cfg.WarnKeys = c.Bool(warnKeysFlag.Name)
	}
	if c.IsSet(driverFlag.Name) {
		cfg.Driver = c.String(driverFlag.Name)
	}
	if c.IsSet(logLevelFlag.Name) {
		cfg.LogLevel = c.String(logLevelFlag.Name)
	}
	return cfg, nil
}
