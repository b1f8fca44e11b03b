package cache

import (
	"context"
	"time"
)

// noopCache é usado quando o Redis não está disponível: todo Get é miss
// e as escritas são descartadas. Mantém os usecases sem ramificação.
type noopCache struct{}

func NewNoopCache() Cache {
	return noopCache{}
}

func (noopCache) Get(context.Context, string, any) bool           { return false }
func (noopCache) Set(context.Context, string, any, time.Duration) {}
func (noopCache) Delete(context.Context, ...string)               {}
func (noopCache) DeleteByPrefix(context.Context, string)          {}
