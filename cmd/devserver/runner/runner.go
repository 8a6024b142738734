// Package runner drives the local smoke test: env file bootstrap, backend
// check and a dev server that opens the browser
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"labelsmobile/app"
	"labelsmobile/app/server"
	"labelsmobile/app/services/backendcheck"
	"labelsmobile/domain/supabaseconfig"
	"labelsmobile/internal/bootstrap"
	"labelsmobile/internal/browser"
	"labelsmobile/internal/console"
	"labelsmobile/internal/portcheck"
	"labelsmobile/internal/repository/dotenv"
)

var (
	ErrEnvFileSetup = errors.New("could not set up the .env file")
	ErrPortInUse    = errors.New("port already in use")
)

const DefaultBrowserDelay = 1 * time.Second

type Options struct {
	Port         int
	// PortArg is the raw port argument; it overrides Port when it parses.
	PortArg      string
	StaticDir    string
	EnvFile      string
	TemplateFile string
	Fallbacks    bootstrap.Fallbacks
	SkipProbe    bool
	BrowserDelay time.Duration
}

type BrowserOpener interface {
	OpenAfter(ctx context.Context, url string, delay time.Duration) <-chan error
}

type Runner struct {
	opts       Options
	out        *console.Printer
	opener     BrowserOpener
	newChecker func(cfg *supabaseconfig.Config) (backendcheck.Service, error)
}

func New(opts Options, w io.Writer, browserCommand string) *Runner {
	if opts.BrowserDelay == 0 {
		opts.BrowserDelay = DefaultBrowserDelay
	}
	return &Runner{
		opts:   opts,
		out:    console.New(w),
		opener: browser.NewOpener(browserCommand),
		newChecker: func(cfg *supabaseconfig.Config) (backendcheck.Service, error) {
			return backendcheck.New(cfg)
		},
	}
}

// Run performs every step. Only env file problems and server start
// failures are returned; backend problems are reported and skipped.
func (r *Runner) Run(ctx context.Context) error {
	r.out.Line("🧪 Probando aplicación móvil localmente")
	r.out.Rule(50)

	if err := r.CheckEnvFile(); err != nil {
		r.out.Blank()
		r.out.Fail("No se pudo configurar el archivo .env")
		return err
	}

	if !r.opts.SkipProbe {
		if err := r.CheckBackend(ctx); err != nil {
			r.out.Blank()
			r.out.Warn("Problemas con Supabase, pero continuando...")
			r.out.Hint("La app funcionará en modo offline si hay datos locales")
		}
	}

	r.out.Blank()
	r.out.Line("🚀 Iniciando servidor de desarrollo...")

	r.resolvePort()
	return r.Serve(ctx)
}

func (r *Runner) resolvePort() {
	if r.opts.PortArg == "" {
		return
	}
	port, ok := ParsePort(r.opts.PortArg)
	if !ok {
		r.out.Fail("Puerto inválido, usando %d", r.opts.Port)
		return
	}
	r.opts.Port = port
}

// ParsePort accepts any integer in the TCP port range.
func ParsePort(arg string) (int, bool) {
	port, err := strconv.Atoi(arg)
	if err != nil || port < 0 || port > 65535 {
		return 0, false
	}
	return port, true
}

// CheckEnvFile creates the env file from the template if needed and checks
// that both Supabase variables are assigned.
func (r *Runner) CheckEnvFile() error {
	res, err := bootstrap.EnsureEnvFile(r.opts.EnvFile, r.opts.TemplateFile, r.opts.Fallbacks)
	if err != nil {
		if errors.Is(err, bootstrap.ErrTemplateNotFound) {
			r.out.Fail("Archivo .env no encontrado")
			r.out.Fail("Archivo %s no encontrado", r.opts.TemplateFile)
		} else {
			r.out.Fail("Error al crear .env: %s", err)
		}
		return fmt.Errorf("%w: %w", ErrEnvFileSetup, err)
	}
	if res.Created {
		r.out.Fail("Archivo .env no encontrado")
		r.out.Note("Creando .env desde %s...", r.opts.TemplateFile)
		r.out.OK("Archivo .env creado con credenciales")
	}

	if err := bootstrap.VerifyEnvFile(r.opts.EnvFile); err != nil {
		if errors.Is(err, bootstrap.ErrMissingVariables) {
			r.out.Fail("Archivo .env no tiene las variables necesarias")
		} else {
			r.out.Fail("Error al leer .env: %s", err)
		}
		return fmt.Errorf("%w: %w", ErrEnvFileSetup, err)
	}

	r.out.OK("Archivo .env configurado correctamente")
	return nil
}

// CheckBackend queries the Supabase project named in the env file.
func (r *Runner) CheckBackend(ctx context.Context) error {
	cfg, err := dotenv.NewSupabaseConfigRepository(r.opts.EnvFile).Get(ctx)
	if err != nil {
		r.out.Fail("Error de conexión con Supabase: %s", err)
		return err
	}

	r.out.Line("🔄 Verificando conexión con Supabase...")

	checker, err := r.newChecker(cfg)
	if err != nil {
		r.out.Fail("Error de conexión con Supabase: %s", err)
		r.out.Note("Verifica las credenciales en .env")
		return err
	}

	report, err := checker.Check(ctx)
	if report != nil {
		r.out.OK("Conexión exitosa - %d productos encontrados", report.Products)
	}
	if err != nil {
		if report == nil {
			r.out.Fail("Error de conexión con Supabase: %s", err)
			r.out.Note("Verifica las credenciales en .env")
		} else {
			r.out.Warn("No se pudieron verificar las tablas móviles: %s", err)
		}
		return err
	}

	if !report.MobileTables {
		r.out.Warn("Tablas móviles no encontradas")
		r.out.Note("Ejecuta %s en Supabase", backendcheck.MobileTablesSQLHint)
		return errors.New("mobile tables not found")
	}

	r.out.OK("Tablas móviles configuradas correctamente")
	return nil
}

// Serve starts the dev server, opens the browser shortly after and blocks
// until ctx is cancelled.
func (r *Runner) Serve(ctx context.Context) error {
	ln, err := server.Listen(fmt.Sprint(r.opts.Port))
	if err != nil {
		if portcheck.IsAddrInUse(err) {
			r.out.Fail("Puerto %d ya está en uso", r.opts.Port)
			r.out.Hint("Intenta con otro puerto: devserver %d", r.opts.Port+1)
			return fmt.Errorf("%w: %d", ErrPortInUse, r.opts.Port)
		}
		r.out.Fail("Error al iniciar servidor: %s", err)
		return err
	}

	port := r.opts.Port
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		port = addr.Port
	}
	url := fmt.Sprintf("http://localhost:%d", port)

	e := server.New(app.NewContainer(r.opts.StaticDir, r.opts.EnvFile))

	r.out.Line("🌐 Servidor iniciado en %s", url)
	r.out.Line("📱 Aplicación móvil disponible en el navegador")
	r.out.Line("⏹️ Presiona Ctrl+C para detener el servidor")

	r.opener.OpenAfter(ctx, url, r.opts.BrowserDelay)

	if err := server.Run(ctx, e, ln); err != nil {
		r.out.Fail("Error al iniciar servidor: %s", err)
		return err
	}

	r.out.Blank()
	r.out.Line("🛑 Servidor detenido")
	return nil
}
