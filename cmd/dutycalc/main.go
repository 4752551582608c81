// Command dutycalc computes a duty table offline from saved ICEGATE payloads.
//
// Usage:
//
//	dutycalc -cth 85171300 -country CN -tariff tariff.json [-effective eff.json]
//	         [-notification notn.json] [-value 100000] [-quantity 1]
//	         [-notn 057/2017 -slno 3] [-format json|csv|xlsx] [-out file]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"customsduty/internal/config"
	"customsduty/internal/duty"
	"customsduty/internal/export"
	"customsduty/internal/logger"
	"customsduty/internal/service"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	cth, country                  string
	value, quantity               float64
	notn, slno                    string
	tariff, effective, notifyFile string
	format, out                   string
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("dutycalc", flag.ContinueOnError)
	fs.StringVar(&opts.cth, "cth", "", "classification code (required)")
	fs.StringVar(&opts.country, "country", "", "country of origin code or name (default CN,CHINA)")
	fs.Float64Var(&opts.value, "value", 0, "assessable value (default 100000)")
	fs.Float64Var(&opts.quantity, "quantity", 0, "quantity for specific duties (default 1)")
	fs.StringVar(&opts.notn, "notn", "", "BCD notification to apply")
	fs.StringVar(&opts.slno, "slno", "", "serial number within the notification")
	fs.StringVar(&opts.tariff, "tariff", "", "tariff-view payload JSON file")
	fs.StringVar(&opts.effective, "effective", "", "effective-view payload JSON file")
	fs.StringVar(&opts.notifyFile, "notification", "", "notification-view payload JSON file")
	fs.StringVar(&opts.format, "format", "json", "output format: json, csv or xlsx")
	fs.StringVar(&opts.out, "out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.cth == "" {
		return nil, errors.New("-cth is required")
	}
	switch opts.format {
	case "json", "csv", "xlsx":
	default:
		return nil, fmt.Errorf("unknown -format %q", opts.format)
	}
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Warning: loading .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	zlog, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	payloads, err := readPayloads(opts)
	if err != nil {
		return err
	}

	// The offline path never touches the tariff source.
	svc := service.NewTariffService(nil, cfg.ICEGate.Countries, cfg.Lookup, zlog)
	res, err := svc.Compute(context.Background(), duty.Input{
		CTH:             opts.cth,
		Country:         opts.country,
		AssessableValue: opts.value,
		Quantity:        opts.quantity,
		Notification:    opts.notn,
		Serial:          opts.slno,
		Payloads:        payloads,
	})
	if err != nil {
		return err
	}
	zlog.Debug("dutycalc: computed", zap.String("cth", opts.cth), zap.Float64("total", res.TotalRow.Amount))

	w := stdout
	if opts.out != "" {
		f, err := os.Create(opts.out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", opts.out, err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}
	return writeResult(w, opts.format, opts.cth, res)
}

func readPayloads(opts *options) (duty.Payloads, error) {
	var p duty.Payloads
	for _, src := range []struct {
		path string
		dst  *json.RawMessage
	}{
		{opts.tariff, &p.Tariff},
		{opts.effective, &p.Effective},
		{opts.notifyFile, &p.Notification},
	} {
		if src.path == "" {
			continue
		}
		data, err := os.ReadFile(src.path)
		if err != nil {
			return duty.Payloads{}, fmt.Errorf("reading payload %s: %w", src.path, err)
		}
		*src.dst = data
	}
	return p, nil
}

func writeResult(w io.Writer, format, cth string, res *duty.Result) error {
	sheets := []export.Sheet{{Name: cth, Result: res}}
	switch format {
	case "csv":
		return export.WriteCSV(w, sheets)
	case "xlsx":
		return export.WriteWorkbook(w, sheets)
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
}
