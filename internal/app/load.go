package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/five82/handydiet/internal/dietapi"
	"github.com/five82/handydiet/internal/state"
)

// loadDataset performs the session's single dataset fetch and settles store
// with the outcome. Failures are terminal; there is no retry.
func loadDataset(ctx context.Context, store *state.Store, fetcher dietapi.Fetcher, logger *zap.Logger) error {
	data, err := fetcher.FetchDiet(ctx)
	store.Settle(data, err)
	if err != nil {
		logger.Error("dataset load failed", zap.Error(err))
		return err
	}
	logger.Info("dataset loaded", zap.Int("days", len(data.Days)))
	return nil
}
