// Package usecase reúne o que os casos de uso de cada entidade compartilham:
// tradução de erros para httperr e o acesso best-effort ao cache.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	"github.com/BruksfildServices01/vet-scheduler/internal/validators"
)

// Validation converte uma violação dos validadores em erro 400.
func Validation(err error) error {
	var v *validators.Violation
	if errors.As(err, &v) {
		return httperr.ErrValidation(v.Code, v.Message)
	}
	return err
}

// NotFound traduz domain.ErrNotFound; demais erros seguem embrulhados.
func NotFound(err error, code, message string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return httperr.ErrNotFound(code, message)
	}
	return fmt.Errorf("%s: %w", code, err)
}

func EmailTaken() error {
	return httperr.ErrConflict("email_taken", "Este e-mail já está cadastrado.")
}

func InvalidCredentials() error {
	return httperr.ErrUnauthorized("invalid_credentials", "E-mail ou senha inválidos.")
}

// --------------------------------------------------
// Cache (falhas viram log, nunca erro de requisição)
// --------------------------------------------------

func CacheGet(ctx context.Context, c cache.Cache, key string, dest any) bool {
	found, err := c.Get(ctx, key, dest)
	if err != nil {
		slog.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return found
}

func CacheSet(ctx context.Context, c cache.Cache, key string, value any) {
	if err := c.Set(ctx, key, value); err != nil {
		slog.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func CacheDelete(ctx context.Context, c cache.Cache, keys ...string) {
	if err := c.Delete(ctx, keys...); err != nil {
		slog.WarnContext(ctx, "cache delete failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}

// CacheEvict é o CacheDelete das exclusões: a marca impede que uma leitura
// concorrente devolva o registro apagado ao cache.
func CacheEvict(ctx context.Context, c cache.Cache, keys ...string) {
	if err := c.Evict(ctx, keys...); err != nil {
		slog.WarnContext(ctx, "cache evict failed", slog.Any("keys", keys), slog.String("error", err.Error()))
	}
}
