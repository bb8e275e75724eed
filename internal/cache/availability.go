package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/navalhaclub/booking-api/internal/domain/appointment"
)

// ======================================================
// Cache de disponibilidade
//
// O front consulta a agenda em polling; o motor é puro e
// barato, mas cada chamada lê três coleções do banco. O
// cache segura a resposta por alguns segundos e é
// invalidado em toda escrita que muda a agenda. Redis
// fora do ar nunca derruba a consulta: tudo degrada para
// recalcular.
//
// Chaves são versionadas em vez de varridas: escrever num
// dia incrementa a versão do dia, mudar settings/expediente
// incrementa a geração global, e as chaves antigas expiram
// sozinhas pelo TTL.
// ======================================================

type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(rdb *redis.Client, ttl time.Duration) *Availability {
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &Availability{rdb: rdb, ttl: ttl}
}

func (c *Availability) enabled() bool {
	return c != nil && c.rdb != nil
}

func (c *Availability) dataKey(ctx context.Context, date string, durationMin int) string {
	gen, _ := c.rdb.Get(ctx, "avail:gen").Result()
	if gen == "" {
		gen = "0"
	}
	ver, _ := c.rdb.Get(ctx, "avail:ver:"+date).Result()
	if ver == "" {
		ver = "0"
	}
	return fmt.Sprintf("avail:g%s:%s:v%s:d%d", gen, date, ver, durationMin)
}

func (c *Availability) Get(ctx context.Context, date string, durationMin int) (*domain.AvailabilityResult, bool) {
	if !c.enabled() {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, c.dataKey(ctx, date, durationMin)).Bytes()
	if err != nil {
		return nil, false
	}

	var res domain.AvailabilityResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, false
	}
	return &res, true
}

func (c *Availability) Set(ctx context.Context, res *domain.AvailabilityResult) {
	if !c.enabled() || res == nil {
		return
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return
	}

	c.rdb.Set(ctx, c.dataKey(ctx, res.Date, res.DurationMinutes), raw, c.ttl)
}

// Invalidate descarta as respostas de um dia (nova reserva,
// cancelamento ou bloqueio naquela data).
func (c *Availability) Invalidate(ctx context.Context, date string) {
	if !c.enabled() {
		return
	}
	c.rdb.Incr(ctx, "avail:ver:"+date)
}

// InvalidateAll descarta tudo (settings, expediente ou duração de
// serviço mudaram, então qualquer dia pode ter mudado de cara).
func (c *Availability) InvalidateAll(ctx context.Context) {
	if !c.enabled() {
		return
	}
	c.rdb.Incr(ctx, "avail:gen")
}
