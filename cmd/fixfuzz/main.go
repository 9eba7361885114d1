// Command fixfuzz drives randomized property campaigns against the fixed
// point formats. It exits non-zero when any property is falsified.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/fixprop/fixprop/internal/dbg"
	"github.com/fixprop/fixprop/pkg/props/q64props"
	"github.com/fixprop/fixprop/pkg/props/sd59props"
	"github.com/fixprop/fixprop/pkg/props/ud60props"
	"github.com/fixprop/fixprop/pkg/report/duckdb"
	"github.com/fixprop/fixprop/pkg/verify"
)

type tally struct {
	passed    uint64
	discarded uint64
	violated  uint64
}

func suiteProperties(suite string) ([]verify.Property, bool) {
	switch suite {
	case "q64":
		return q64props.Properties(), true
	case "sd59":
		return sd59props.Properties(), true
	case "ud60":
		return ud60props.Properties(), true
	case "all":
		var all []verify.Property
		all = append(all, q64props.Properties()...)
		all = append(all, sd59props.Properties()...)
		all = append(all, ud60props.Properties()...)
		return all, true
	default:
		return nil, false
	}
}

func main() {
	suite := flag.String("suite", "all", "property suite: all, q64, sd59 or ud60")
	iterations := flag.Int("iterations", 10000, "random draws per property")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "rng seed, for reproducing a campaign")
	debug := flag.Bool("debug", false, "trace every library call")
	report := flag.String("report", "", "optional duckdb file to persist the campaign into")
	flag.Parse()

	logger := dbg.NewCampaignLogger(*debug)
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)
	verify.SetTrace(logger)

	properties, ok := suiteProperties(*suite)
	if !ok {
		logger.Fatal("unknown suite", zap.String("suite", *suite))
	}

	ctx := context.Background()
	campaign := uuid.New()
	logger.Info("campaign started",
		zap.String("id", campaign.String()),
		zap.String("suite", *suite),
		zap.Uint64("seed", *seed),
		zap.Int("iterations", *iterations),
		zap.Int("properties", len(properties)))

	var writer *duckdb.Writer
	if *report != "" {
		writer = duckdb.NewWriter(*report)
		if err := writer.Connect(ctx); err != nil {
			logger.Fatal("error opening report", zap.Error(err))
		}
		defer writer.Close()
		if err := writer.RecordCampaign(ctx, campaign, *suite, *seed, *iterations); err != nil {
			logger.Fatal("error recording campaign", zap.Error(err))
		}
	}

	rng := rand.New(rand.NewSource(*seed))
	var total tally
	for _, p := range properties {
		t := runProperty(ctx, logger, writer, campaign, p, *iterations, rng)
		total.passed += t.passed
		total.discarded += t.discarded
		total.violated += t.violated
	}

	logger.Info("campaign finished",
		zap.String("id", campaign.String()),
		zap.Uint64("passed", total.passed),
		zap.Uint64("discarded", total.discarded),
		zap.Uint64("violated", total.violated))

	if total.violated > 0 {
		os.Exit(1)
	}
}

func runProperty(ctx context.Context, logger *zap.Logger, writer *duckdb.Writer, campaign uuid.UUID, p verify.Property, iterations int, rng *rand.Rand) tally {
	var t tally
	for i := 0; i < iterations; i++ {
		err := p.Run(rng)
		switch {
		case err == nil:
			t.passed++
		case errors.Is(err, verify.ErrDiscard):
			t.discarded++
		default:
			t.violated++
			var v *verify.Violation
			if errors.As(err, &v) {
				logger.Error("property violated",
					zap.String("property", v.Property),
					zap.String("message", v.Message),
					zap.Strings("operands", v.Operands))
				if writer != nil {
					if werr := writer.RecordViolation(ctx, campaign, v); werr != nil {
						logger.Error("error recording violation", zap.Error(werr))
					}
				}
			} else {
				logger.Error("unexpected check error", zap.String("property", p.Name), zap.Error(err))
			}
		}
	}
	if writer != nil {
		if err := writer.RecordRun(ctx, campaign, p.Name, t.passed, t.discarded, t.violated); err != nil {
			logger.Error("error recording run", zap.Error(err))
		}
	}
	logger.Debug("property finished",
		zap.String("property", p.Name),
		zap.Uint64("passed", t.passed),
		zap.Uint64("discarded", t.discarded),
		zap.Uint64("violated", t.violated))
	return t
}
