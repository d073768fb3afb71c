// Package ropzap adapts a zap logger into Tee and Handle callbacks so a
// chain can be observed without changing its outcomes.
package ropzap

import (
	"go.uber.org/zap"

	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop"
	"github.com/daniel-harrison-cko/railway-workshop/pkg/rop/solo"
)

// LogSuccess returns a Tee action that logs the success payload at info level.
func LogSuccess[S any](logger *zap.Logger, msg string) func(S) {
	return func(v S) {
		logger.Info(msg, zap.Any("success", v))
	}
}

// LogFailure returns a Handle callback that logs the failure payload at warn level.
func LogFailure[F any](logger *zap.Logger, msg string) func(F) {
	return func(f F) {
		logger.Warn(msg, zap.Any("failure", f))
	}
}

// Observe logs o with its id and returns it unchanged.
func Observe[S, F any](logger *zap.Logger, msg string, o rop.Outcome[S, F]) rop.Outcome[S, F] {
	l := logger.With(zap.Stringer("outcome_id", o.ID()))
	return solo.DoubleTee(o, LogSuccess[S](l, msg), LogFailure[F](l, msg))
}
