// Package dotenv implements domain repositories backed by a .env file
package dotenv

import (
	"context"
	"labelsmobile/domain/supabaseconfig"
	"labelsmobile/internal/envfile"
)

// SupabaseConfigRepository re-reads the env file on every Get.
type SupabaseConfigRepository struct {
	path   string
	strict bool
}

// NewSupabaseConfigRepository tolerates a missing file and missing keys,
// both of which yield empty values.
func NewSupabaseConfigRepository(path string) *SupabaseConfigRepository {
	return &SupabaseConfigRepository{path: path}
}

// NewStrictSupabaseConfigRepository fails when the file or a required key is missing.
func NewStrictSupabaseConfigRepository(path string) *SupabaseConfigRepository {
	return &SupabaseConfigRepository{path: path, strict: true}
}

func (r *SupabaseConfigRepository) Path() string {
	return r.path
}

func (r *SupabaseConfigRepository) Get(ctx context.Context) (*supabaseconfig.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	load := envfile.LoadOrEmpty
	if r.strict {
		load = envfile.Load
	}

	env, err := load(r.path)
	if err != nil {
		return nil, err
	}

	return supabaseconfig.FromEnv(env, r.strict)
}
