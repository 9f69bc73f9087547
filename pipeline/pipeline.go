package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/mmdatafocus/commerce_dwh/config"
	"bitbucket.org/mmdatafocus/commerce_dwh/conform"
	"bitbucket.org/mmdatafocus/commerce_dwh/models"
	"bitbucket.org/mmdatafocus/commerce_dwh/warehouse"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrNoUsableRows marks a pipeline-stage failure: a core entity's conformance
// produced nothing to build on. The run aborts before any dimension or fact
// stage, because a star schema rebuilt from a half-empty conformed layer
// would silently break every referential guarantee.
var ErrNoUsableRows = errors.New("stage produced no usable rows")

// RawSource hands the pipeline the raw tabular records per entity. How they
// got there (CSV ingestion, encodings, bulk-load recovery) is the ingestion
// collaborator's problem, not the pipeline's.
type RawSource interface {
	RawCustomers(ctx context.Context) ([]models.RawCustomer, error)
	RawGeolocation(ctx context.Context) ([]models.RawGeolocation, error)
	RawSellers(ctx context.Context) ([]models.RawSeller, error)
	RawProducts(ctx context.Context) ([]models.RawProduct, error)
	RawCategoryTranslations(ctx context.Context) ([]models.RawCategoryTranslation, error)
	RawOrders(ctx context.Context) ([]models.RawOrder, error)
	RawOrderItems(ctx context.Context) ([]models.RawOrderItem, error)
	RawPayments(ctx context.Context) ([]models.RawPayment, error)
	RawReviews(ctx context.Context) ([]models.RawReview, error)
}

// WarehouseSink persists one complete build. Load must be all-or-nothing: a
// reader either sees the previous warehouse or the new one, never a mix.
type WarehouseSink interface {
	Load(ctx context.Context, build *BuildResult) error
}

// BuildResult is everything one run materializes.
type BuildResult struct {
	Customers    []models.Customer
	Geolocation  []models.Geolocation
	Sellers      []models.Seller
	Products     []models.Product
	Translations []models.CategoryTranslation
	Orders       []models.Order
	OrderItems   []models.OrderItem
	Payments     []models.Payment
	Reviews      []models.Review

	DimCustomers []models.DimCustomer
	DimProducts  []models.DimProduct
	DimSellers   []models.DimSeller
	DimDates     []models.DimDate
	Facts        []models.FactOrderItem
}

type Options struct {
	// Date dimension span; defaults to 2016-01-01 .. 2020-12-31.
	DateFrom time.Time
	DateTo   time.Time
	// Now feeds the late-delivery flag; defaults to time.Now().UTC().
	Now time.Time
}

// RunReport replaces ambient batch counters: one explicit value per run with
// the accept/reject counts and durations of every stage.
type RunReport struct {
	RunId     string                `json:"run_id"`
	StartedAt time.Time             `json:"started_at"`
	Duration  time.Duration         `json:"duration"`
	Stages    []conform.StageReport `json:"stages"`
}

func (r *RunReport) addStage(report conform.StageReport, took time.Duration) {
	report.Duration = took
	r.Stages = append(r.Stages, report)

	config.GetLogger().WithFields(logrus.Fields{
		"module":   "pipeline",
		"run_id":   r.RunId,
		"stage":    report.Stage,
		"input":    report.Input,
		"accepted": report.Accepted,
		"rejected": report.Rejected,
		"took":     took.String(),
	}).Info("stage complete")
}

// Run executes the whole batch: conform -> resolve -> dimensions -> facts ->
// load. Stages fail fast; nothing is handed to the sink unless every stage
// succeeded, and the sink itself loads transactionally.
func Run(ctx context.Context, source RawSource, sink WarehouseSink, opts Options) (*RunReport, error) {
	if opts.DateFrom.IsZero() {
		opts.DateFrom = time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	if opts.DateTo.IsZero() {
		opts.DateTo = time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC)
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now().UTC()
	}

	report := &RunReport{
		RunId:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	build := &BuildResult{}

	// Conform. Order conformance needs the conformed customers (FK rule) and
	// geolocation wants them for city labels, so customers go first.
	rawCustomers, err := source.RawCustomers(ctx)
	if err != nil {
		return report, fmt.Errorf("read raw customers: %w", err)
	}
	build.Customers = timedStage(report, func() ([]models.Customer, conform.StageReport) {
		return conform.ConformCustomers(rawCustomers)
	})
	if len(build.Customers) == 0 {
		return report, fmt.Errorf("conform customers (input=%d): %w", len(rawCustomers), ErrNoUsableRows)
	}

	rawGeo, err := source.RawGeolocation(ctx)
	if err != nil {
		return report, fmt.Errorf("read raw geolocation: %w", err)
	}
	build.Geolocation = timedStage(report, func() ([]models.Geolocation, conform.StageReport) {
		return conform.ConformGeolocation(rawGeo, build.Customers)
	})

	rawSellers, err := source.RawSellers(ctx)
	if err != nil {
		return report, fmt.Errorf("read raw sellers: %w", err)
	}
	build.Sellers = timedStage(report, func() ([]models.Seller, conform.StageReport) {
		return conform.ConformSellers(rawSellers)
	})
	if len(build.Sellers) == 0 {
		return report, fmt.Errorf("conform sellers (input=%d): %w", len(rawSellers), ErrNoUsableRows)
	}

	rawProducts, err := source.RawProducts(ctx)
	if err != nil {
		return report, fmt.Errorf("read raw products: %w", err)
	}
	build.Products = timedStage(report, func() ([]models.Product, conform.StageReport) {
		return conform.ConformProducts(rawProducts)
	})
	if len(build.Products) == 0 {
		return report, fmt.Errorf("conform products (input=%d): %w", len(rawProducts), ErrNoUsableRows)
	}

	rawTranslations, err := source.RawCategoryTranslations(ctx)
	if err != nil {
		return report, fmt.Errorf("read raw category translations: %w", err)
	}
	build.Translations = timedStage(report, func() ([]models.CategoryTranslation, conform.StageReport) {
		return conform.ConformCategoryTranslations(rawTranslations)
	})

	rawOrders, err := source.RawOrders(ctx)
	if err != nil {
		return report, fmt.Errorf("read raw orders: %w", err)
	}
	build.Orders = timedStage(report, func() ([]models.Order, conform.StageReport) {
		return conform.ConformOrders(rawOrders, build.Customers)
	})
	if len(build.Orders) == 0 {
		return report, fmt.Errorf("conform orders (input=%d): %w", len(rawOrders), ErrNoUsableRows)
	}

	rawItems, err := source.RawOrderItems(ctx)
	if err != nil {
		return report, fmt.Errorf("read raw order items: %w", err)
	}
	conformedItems := timedStage(report, func() ([]models.OrderItem, conform.StageReport) {
		return conform.ConformOrderItems(rawItems)
	})

	rawPayments, err := source.RawPayments(ctx)
	if err != nil {
		return report, fmt.Errorf("read raw payments: %w", err)
	}
	conformedPayments := timedStage(report, func() ([]models.Payment, conform.StageReport) {
		return conform.ConformPayments(rawPayments)
	})

	rawReviews, err := source.RawReviews(ctx)
	if err != nil {
		return report, fmt.Errorf("read raw reviews: %w", err)
	}
	conformedReviews := timedStage(report, func() ([]models.Review, conform.StageReport) {
		return conform.ConformReviews(rawReviews)
	})

	// Resolve references.
	build.OrderItems = timedStage(report, func() ([]models.OrderItem, conform.StageReport) {
		return conform.ResolveOrderItems(conformedItems, build.Orders, build.Products, build.Sellers)
	})
	build.Payments = timedStage(report, func() ([]models.Payment, conform.StageReport) {
		return conform.ResolvePayments(conformedPayments, build.Orders)
	})
	build.Reviews = timedStage(report, func() ([]models.Review, conform.StageReport) {
		return conform.ResolveReviews(conformedReviews, build.Orders)
	})

	// Dimensions, then facts against the dimension key tables.
	dimCustomers, customerKeys := warehouse.BuildCustomerDimension(build.Customers, build.Geolocation)
	dimProducts, productKeys := warehouse.BuildProductDimension(build.Products, build.Translations)
	dimSellers, sellerKeys := warehouse.BuildSellerDimension(build.Sellers)
	build.DimCustomers = dimCustomers
	build.DimProducts = dimProducts
	build.DimSellers = dimSellers
	build.DimDates = warehouse.GenerateDateDimension(opts.DateFrom, opts.DateTo)

	build.Facts = warehouse.AssembleFacts(warehouse.FactInput{
		Orders:       build.Orders,
		Items:        build.OrderItems,
		Payments:     build.Payments,
		Reviews:      build.Reviews,
		CustomerKeys: customerKeys,
		ProductKeys:  productKeys,
		SellerKeys:   sellerKeys,
		Now:          opts.Now,
	})

	if err := sink.Load(ctx, build); err != nil {
		return report, fmt.Errorf("load warehouse: %w", err)
	}

	report.Duration = time.Since(report.StartedAt)
	config.GetLogger().WithFields(logrus.Fields{
		"module":   "pipeline",
		"run_id":   report.RunId,
		"orders":   len(build.Orders),
		"facts":    len(build.Facts),
		"duration": report.Duration.String(),
	}).Info("warehouse rebuild complete")
	return report, nil
}

// timedStage runs one conformance/resolution stage and records its report
// with the elapsed time.
func timedStage[T any](report *RunReport, stage func() ([]T, conform.StageReport)) []T {
	started := time.Now()
	out, stageReport := stage()
	report.addStage(stageReport, time.Since(started))
	return out
}
