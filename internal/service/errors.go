package service

import (
	"go.uber.org/zap"

	apperrors "github.com/ilyde-platform/ilyde-datasets/internal/pkg/errors"
	"github.com/ilyde-platform/ilyde-datasets/internal/pkg/logger"
)

// unknown keeps an error that already carries a kind and reports any other
// collaborator failure as Unknown
func unknown(msg string, err error) error {
	if apperrors.IsAppError(err) {
		return err
	}
	return apperrors.Unknown(msg).WithError(err)
}

// logFailure logs err at the severity of its kind and returns it unchanged
func logFailure(log *zap.Logger, op string, err error, fields ...zap.Field) error {
	logger.LogError(log, op+" failed", err, fields...)
	return err
}
