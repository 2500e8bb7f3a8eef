package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/kossylee/fashionhive-backend/internal/core/application/usecases/queries"
)

// LowStockReportJob scans inventory for materials at or below their reorder
// point and reports them. Runs hourly; a reservation can push a material
// under its reorder point at any moment during the day.
type LowStockReportJob struct {
	handler queries.GetLowStockMaterialsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockReportJob creates the hourly low-stock report job.
func NewLowStockReportJob(handler queries.GetLowStockMaterialsQueryHandler, logger *slog.Logger) *LowStockReportJob {
	return &LowStockReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "low_stock_report_job"),
	}
}

// Start schedules the report at the top of every hour.
func (j *LowStockReportJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetLowStockMaterialsQuery()

		materials, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock scan failed", "error", err)
			return
		}

		if len(materials) == 0 {
			return
		}

		for _, material := range materials {
			j.logger.WarnContext(ctx, "Material needs reordering",
				"sku", material.SKU,
				"quantity", material.Quantity,
				"reorderPoint", material.ReorderPoint,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started (running hourly)")
	return nil
}

// Stop stops the low-stock report job.
func (j *LowStockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
