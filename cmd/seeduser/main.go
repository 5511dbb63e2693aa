// seeduser crea (o actualiza) un usuario de la API con password hasheado con
// bcrypt. Útil para el bootstrap inicial, ya que las migraciones no pueden
// calcular hashes.
//
// Uso: go run ./cmd/seeduser -usuario admin -password secreto [-nombre "Admin"] [-rol admin]
// Requiere las mismas variables de entorno de conexión que la API (DB_* o DATABASE_URL).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jcondori/kardex-api/internal/domain/entity"
	"github.com/jcondori/kardex-api/internal/infrastructure/postgres"
	"github.com/jcondori/kardex-api/pkg/config"
)

func main() {
	usuario := flag.String("usuario", "", "nombre de usuario (login)")
	password := flag.String("password", "", "password en texto plano")
	nombre := flag.String("nombre", "", "nombre completo (por defecto igual al usuario)")
	rol := flag.String("rol", entity.RolAlmacenero, "rol: admin, almacenero o vendedor")
	flag.Parse()

	if *usuario == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "se requieren -usuario y -password")
		flag.Usage()
		os.Exit(1)
	}
	if *nombre == "" {
		*nombre = *usuario
	}
	if *rol != entity.RolAdmin && *rol != entity.RolAlmacenero && *rol != entity.RolVendedor {
		fmt.Fprintf(os.Stderr, "rol inválido: %s\n", *rol)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de password: %v\n", err)
		os.Exit(1)
	}

	// Upsert: si el usuario ya existe se actualiza su password y rol.
	_, err = pool.Exec(ctx, `
		INSERT INTO usuarios (id, usuario, nombre, password_hash, rol, activo)
		VALUES ($1, $2, $3, $4, $5, true)
		ON CONFLICT (usuario) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    rol           = EXCLUDED.rol,
		    nombre        = EXCLUDED.nombre,
		    activo        = true`,
		uuid.New().String(), *usuario, *nombre, string(hash), *rol,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar usuario: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Usuario %q listo (rol %s)\n", *usuario, *rol)
}
