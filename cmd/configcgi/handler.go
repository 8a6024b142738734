package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"labelsmobile/domain/supabaseconfig"
	"labelsmobile/internal/repository/dotenv"

	"github.com/labstack/gommon/log"
)

const (
	msgMethodNotAllowed = "Método no permitido"
	msgLoadFailed       = "Error al cargar configuración"
)

type (
	ErrorResponse struct {
		Error   string `json:"error"`
		Message string `json:"message,omitempty"`
	}
	response struct {
		status int
		body   any
	}
)

// handle answers one CGI request. The env file is only read for GET.
func handle(ctx context.Context, method string, repo supabaseconfig.Repository) response {
	if method == "" {
		method = http.MethodGet
	}
	if method != http.MethodGet {
		return response{
			status: http.StatusMethodNotAllowed,
			body:   ErrorResponse{Error: msgMethodNotAllowed},
		}
	}

	cfg, err := repo.Get(ctx)
	if err != nil {
		log.Errorf("failed to load supabase config: %s", err)
		return loadFailed(err.Error())
	}

	return response{status: http.StatusOK, body: cfg}
}

func loadFailed(message string) response {
	return response{
		status: http.StatusInternalServerError,
		body:   ErrorResponse{Error: msgLoadFailed, Message: message},
	}
}

// write emits the CGI headers, a blank line and the JSON body. A Status
// header is only sent for non-200 responses.
func write(w io.Writer, resp response) error {
	body, err := json.Marshal(resp.body)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}

	var buf bytes.Buffer
	if resp.status != http.StatusOK {
		fmt.Fprintf(&buf, "Status: %d %s\n", resp.status, http.StatusText(resp.status))
	}
	buf.WriteString("Content-Type: application/json\n")
	buf.WriteString("Access-Control-Allow-Origin: *\n")
	buf.WriteString("Access-Control-Allow-Methods: GET\n")
	buf.WriteString("Access-Control-Allow-Headers: Content-Type\n")
	buf.WriteString("\n")
	buf.Write(body)
	buf.WriteString("\n")

	_, err = w.Write(buf.Bytes())
	return err
}

// run serves a single request and returns the process exit code.
func run(ctx context.Context, getenv func(string) string, w io.Writer, envPath string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("config endpoint panicked: %v", r)
			if err := write(w, loadFailed(fmt.Sprint(r))); err != nil {
				log.Errorf("failed to write response: %s", err)
			}
			code = 1
		}
	}()

	repo := dotenv.NewStrictSupabaseConfigRepository(envPath)
	resp := handle(ctx, getenv("REQUEST_METHOD"), repo)

	if err := write(w, resp); err != nil {
		log.Errorf("failed to write response: %s", err)
		return 1
	}

	if resp.status != http.StatusOK {
		return 1
	}
	return 0
}
