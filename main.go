package main

import (
	"context"
	"fmt"
	"io"
	"labelsmobile/app"
	"labelsmobile/app/server"
	"labelsmobile/config/appconf"
	"labelsmobile/internal/console"
	"labelsmobile/internal/lifecycle"
	"labelsmobile/internal/netinfo"
	"labelsmobile/version"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "labelsmobile",
		Usage:   "Serve the Labels Productos PWA to phones on the local network",
		Version: version.Version,
		Action:  serveAction,
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "Print the version",
				Action: func(ctx context.Context, c *cli.Command) error {
					fmt.Fprintf(c.Root().Writer, "labelsmobile %s (%s)\n", version.Version, version.Commit)
					return nil
				},
			},
		},
	}
}

func serveAction(ctx context.Context, c *cli.Command) error {
	port := appconf.Port()
	out := console.New(c.Root().Writer)

	out.Line("🚀 SERVIDOR PWA PARA MÓVIL - Labels Productos")
	out.Rule(60)

	ln, err := server.Listen(port)
	if err != nil {
		return err
	}

	container := app.NewContainer(appconf.StaticDir(), appconf.EnvFilePath())
	e := server.New(container)

	printBanner(c.Root().Writer, port, netinfo.LocalIP(ctx))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stopSignals := lifecycle.WatchSignals(cancel)
	defer stopSignals()

	if err := server.Run(ctx, e, ln); err != nil {
		return err
	}

	out.Blank()
	out.Line("🛑 Servidor detenido")
	out.Line("¡Gracias por usar Labels Productos Móvil!")
	return nil
}

func printBanner(w io.Writer, port, lanIP string) {
	out := console.New(w)

	out.Line("📱 Servidor iniciado en puerto %s", port)
	out.Blank()
	out.Line("🌐 URLs de acceso:")
	out.Line("   • Local:    http://localhost:%s", port)
	out.Line("   • Red:      http://%s:%s", lanIP, port)
	out.Blank()
	out.Line("📋 INSTRUCCIONES PARA ANDROID:")
	out.Rule(40)
	out.Line("1. Conecta tu Android a la MISMA WiFi que este PC")
	out.Line("2. Abre Chrome en Android y ve a: http://%s:%s", lanIP, port)
	out.Line("3. Chrome te preguntará 'Añadir a pantalla de inicio'")
	out.Line("4. ¡Acepta y ya tienes la app instalada!")
	out.Blank()
	out.Line("🔧 FUNCIONALIDADES:")
	out.Line("   ✅ PWA instalable")
	out.Line("   ✅ Funciona offline")
	out.Line("   ✅ Escáner de códigos de barras")
	out.Line("   ✅ Generación de códigos con barcode")
	out.Line("   ✅ Sincronización con Supabase")
	out.Blank()
	out.Line("⏹️  Presiona Ctrl+C para detener el servidor")
	out.Rule(60)
}
