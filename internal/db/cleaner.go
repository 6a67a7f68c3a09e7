package db

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// StartDraftCleaner periodically removes abandoned drafts: presentations
// that were created but never received input or generated content within
// the retention window. Creation is cheap and unauthenticated abandons
// are common, so the table would otherwise accumulate empty rows.
func StartDraftCleaner(
	ctx context.Context,
	db *sql.DB,
	interval time.Duration,
	retention time.Duration,
	log *zap.Logger,
) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				cutoff := time.Now().Add(-retention)
				res, err := db.ExecContext(ctx, `
                    DELETE FROM presentations
                     WHERE content_input IS NULL
                       AND generated_content IS NULL
                       AND created_at < $1
                `, cutoff)
				if err != nil {
					log.Error("failed to clean abandoned drafts", zap.Error(err))
					continue
				}
				if rows, _ := res.RowsAffected(); rows > 0 {
					log.Info("cleaned abandoned drafts", zap.Int64("removed", rows))
				}
			}
		}
	}()
}
