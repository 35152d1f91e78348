// seed prepara una base PostgreSQL nueva: aplica migraciones, crea el usuario
// administrador y opcionalmente carga sedes desde un CSV.
//
// Uso: go run ./cmd/seed -email admin@empresa.com -password secreto123 [-branches sedes.csv] [-latin1]
//
// El CSV tiene cabecera name,name_ar,address,address_ar. Con -latin1 se decodifica
// como ISO-8859-1 (exportaciones de Excel en Windows).
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/Activos-api/internal/application/auth"
	"github.com/jhoicas/Activos-api/internal/application/dto"
	"github.com/jhoicas/Activos-api/internal/application/usecase"
	"github.com/jhoicas/Activos-api/internal/domain"
	"github.com/jhoicas/Activos-api/internal/domain/entity"
	"github.com/jhoicas/Activos-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Activos-api/pkg/config"
	"github.com/jhoicas/Activos-api/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email del administrador")
	password := flag.String("password", "", "password del administrador")
	branchesPath := flag.String("branches", "", "CSV de sedes (opcional)")
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-seed"})
	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatal().Str("driver", cfg.DB.Driver).Msg("seed solo aplica a DB_DRIVER=postgres")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	if *email != "" {
		authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{Secret: cfg.JWT.Secret})
		u, err := authUC.RegisterUser(ctx, dto.RegisterRequest{
			Email:    *email,
			Password: *password,
			FullName: "Administrador",
			Role:     entity.RoleAdmin,
		})
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			log.Info().Str("email", *email).Msg("el administrador ya existe")
		case err != nil:
			log.Fatal().Err(err).Msg("crear administrador")
		default:
			log.Info().Str("id", u.ID).Str("email", u.Email).Msg("administrador creado")
		}
	}

	if *branchesPath == "" {
		return
	}
	f, err := os.Open(*branchesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV de sedes")
	}
	defer f.Close()

	var r io.Reader = f
	if *latin1 {
		r = transform.NewReader(f, charmap.ISO8859_1.NewDecoder())
	}
	rows, err := readBranches(r)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV de sedes")
	}

	branchUC := usecase.NewBranchUseCase(postgres.NewBranchRepository(pool), postgres.NewWarehouseRepository(pool))
	created := 0
	for i, row := range rows {
		if _, err := branchUC.Create(ctx, row); err != nil {
			log.Warn().Err(err).Int("fila", i+2).Str("name", row.Name).Msg("sede omitida")
			continue
		}
		created++
	}
	log.Info().Int("creadas", created).Int("filas", len(rows)).Msg("carga de sedes terminada")
}

// readBranches lee el CSV de sedes. Las columnas se ubican por nombre de cabecera.
func readBranches(r io.Reader) ([]dto.CreateBranchRequest, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cabecera: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{"name", "address"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("falta la columna %q", required)
		}
	}
	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var out []dto.CreateBranchRequest
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, dto.CreateBranchRequest{
			Name:      field(rec, "name"),
			NameAr:    field(rec, "name_ar"),
			Address:   field(rec, "address"),
			AddressAr: field(rec, "address_ar"),
		})
	}
	return out, nil
}
