package app

import (
	"labelsmobile/domain/supabaseconfig"
	"labelsmobile/internal/repository/dotenv"
)

type Container struct {
	StaticDir        string
	ConfigRepository supabaseconfig.Repository
}

// NewContainer builds the dependencies shared by the mobile server and the
// dev server. The env file is read leniently: a missing file or key yields
// empty values.
func NewContainer(staticDir, envFilePath string) *Container {
	return &Container{
		StaticDir:        staticDir,
		ConfigRepository: dotenv.NewSupabaseConfigRepository(envFilePath),
	}
}
