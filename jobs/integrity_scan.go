package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/logitrack/logitrack/internal/enquiry"
)

// IntegrityScanJob sweeps the stored enquiries and reports records whose
// derived fields drifted from their inputs: TEU totals that no longer
// match the container lines, duplicate latest flags within an offer
// type, and reference months that disagree with the issue date.
type IntegrityScanJob struct {
	Repo   enquiry.Repository
	Logger *slog.Logger
	clock  func() time.Time
}

// NewIntegrityScanJob initialises the scan handler.
func NewIntegrityScanJob(repo enquiry.Repository, logger *slog.Logger) *IntegrityScanJob {
	return &IntegrityScanJob{
		Repo:   repo,
		Logger: logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

type integrityFinding struct {
	EnquiryID int64
	RefNumber string
	Detail    string
}

// Handle executes the integrity scan.
func (j *IntegrityScanJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Repo == nil {
		return errors.New("integrity scan: handler not configured")
	}
	var payload IntegrityScanPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
	}
	if payload.MaxConcurrency <= 0 {
		payload.MaxConcurrency = 4
	}

	start := j.now()
	logger := j.logger()
	logger.Info("starting enquiry integrity scan")

	records, err := j.Repo.List(ctx)
	if err != nil {
		logger.Error("integrity scan failed", slog.Any("error", err))
		return err
	}

	var mu sync.Mutex
	findings := make([]integrityFinding, 0)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(payload.MaxConcurrency)
	for _, rec := range records {
		rec := rec
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			issues := checkEnquiry(rec)
			if len(issues) > 0 {
				mu.Lock()
				findings = append(findings, issues...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Error("integrity scan failed", slog.Any("error", err))
		return err
	}

	for _, f := range findings {
		logger.Warn("enquiry integrity violation",
			slog.Int64("enquiry_id", f.EnquiryID),
			slog.String("reference_number", f.RefNumber),
			slog.String("detail", f.Detail),
		)
	}
	logger.Info("completed enquiry integrity scan",
		slog.Int("records", len(records)),
		slog.Int("findings", len(findings)),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

func checkEnquiry(rec *enquiry.Enquiry) []integrityFinding {
	var issues []integrityFinding
	report := func(format string, args ...interface{}) {
		issues = append(issues, integrityFinding{
			EnquiryID: rec.ID,
			RefNumber: rec.ReferenceNumber,
			Detail:    fmt.Sprintf(format, args...),
		})
	}

	if want := enquiry.ComputeTeuTotal(rec.ContainerLines); math.Abs(want-rec.QuantityTeu) > 1e-9 {
		report("teu total %.2f does not match container lines (want %.2f)", rec.QuantityTeu, want)
	}
	if !rec.IssueDate.IsZero() {
		if want := enquiry.ReferenceMonth(rec.IssueDate.Time); rec.ReferenceMonth != want {
			report("reference month %q does not match issue date (want %q)", rec.ReferenceMonth, want)
		}
	}
	latest := make(map[enquiry.OfferType]int)
	for _, o := range rec.Offers {
		if o.IsLatest {
			latest[o.OfferType]++
		}
	}
	for typ, n := range latest {
		if n > 1 {
			report("%d offers of type %s are flagged latest", n, typ)
		}
	}
	return issues
}

func (j *IntegrityScanJob) now() time.Time {
	if j.clock != nil {
		return j.clock()
	}
	return time.Now().UTC()
}

func (j *IntegrityScanJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
