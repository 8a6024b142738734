package supabaseconfig

import "context"

type Repository interface {
	Get(ctx context.Context) (*Config, error)
}
