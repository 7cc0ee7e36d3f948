package jobs

import (
	"context"
	"time"

	"elocalpass/internal/repositories"

	"go.uber.org/zap"
)

// QRExpirer flags QR codes inactive once they pass their expiry. It only
// touches qr_codes; customer access tokens are kept so an old token keeps
// answering as expired instead of unknown.
type QRExpirer struct {
	qrCodes repositories.QRCodeRepository
	now     func() time.Time
	logger  *zap.Logger
}

func NewQRExpirer(qrCodes repositories.QRCodeRepository, logger *zap.Logger) *QRExpirer {
	return &QRExpirer{
		qrCodes: qrCodes,
		now:     time.Now,
		logger:  logger,
	}
}

func (x *QRExpirer) Run(ctx context.Context) error {
	now := x.now()
	n, err := x.qrCodes.DeactivateExpired(ctx, now)
	if err != nil {
		x.logger.Error("qr expiry failed", zap.Error(err))
		return err
	}
	if n > 0 {
		x.logger.Info("deactivated expired qr codes", zap.Int64("count", n), zap.Time("now", now))
	}
	return nil
}
