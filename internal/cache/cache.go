package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache guarda snapshots de leitura serializados em JSON.
type Cache interface {
	// Get devolve false quando a chave não existe.
	Get(ctx context.Context, key string, dest any) (bool, error)
	// Set não grava chaves marcadas por Evict enquanto a marca durar.
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, keys ...string) error
	// Evict remove as chaves de registros apagados e deixa uma marca
	// (tombstone) por TombstoneTTL, para que uma leitura iniciada antes da
	// exclusão não devolva o snapshot ao cache.
	Evict(ctx context.Context, keys ...string) error
}

// TombstoneTTL cobre a duração de uma leitura em andamento.
const TombstoneTTL = 30 * time.Second

func tombstoneKey(key string) string { return "tombstone:" + key }

func UserKey(id uint) string { return fmt.Sprintf("user:%d", id) }
func PetKey(id uint) string  { return fmt.Sprintf("pet:%d", id) }
func VetKey(id uint) string  { return fmt.Sprintf("vet:%d", id) }

// PetKeys gera as chaves de uma lista de pets (cascatas).
func PetKeys(ids []uint) []string {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, PetKey(id))
	}
	return keys
}

// Nop é usado quando REDIS_URL não está configurada.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, any) error         { return nil }
func (Nop) Delete(context.Context, ...string) error        { return nil }
func (Nop) Evict(context.Context, ...string) error         { return nil }

var _ Cache = Nop{}
