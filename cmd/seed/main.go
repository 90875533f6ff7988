// seed puebla el store con datos de arranque: un usuario admin y un catálogo
// de demostración con dos bodegas.
//
// Uso: go run ./cmd/seed [ruta/almacen.json]
// Por defecto escribe almacen.json en el directorio actual.
package main

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/almacen-ledger/internal/application/auth"
	"github.com/tu-usuario/almacen-ledger/internal/application/dto"
	"github.com/tu-usuario/almacen-ledger/internal/application/ledger"
	"github.com/tu-usuario/almacen-ledger/internal/domain/entity"
	"github.com/tu-usuario/almacen-ledger/internal/infrastructure/localstore"
	"github.com/tu-usuario/almacen-ledger/pkg/logger"
)

func main() {
	path := "almacen.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	log := logger.New(logger.Config{Env: "development", Level: "info"})

	store, err := localstore.OpenFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "abrir store: %v\n", err)
		os.Exit(1)
	}
	book, err := ledger.New(store, log.Zerolog())
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar ledger: %v\n", err)
		os.Exit(1)
	}

	authUC := auth.NewAuthUseCase(localstore.NewUserRepository(store), auth.JWTConfig{})
	if _, err := authUC.RegisterUser(dto.RegisterRequest{
		Email:    "admin@almacen.local",
		Password: "cambiar-ahora",
		Name:     "Administrador",
		Role:     entity.RoleAdmin,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "crear admin: %v\n", err)
		os.Exit(1)
	}

	if _, err := book.AddWarehouse("Bodega Norte"); err != nil {
		fmt.Fprintf(os.Stderr, "crear bodega: %v\n", err)
		os.Exit(1)
	}
	demo := []ledger.ProductInput{
		{Code: "A1", Name: "Casco industrial", Family: "EPP", Value: decimal.NewFromInt(45000), Currency: "COP", Unit: "und", Location: "E1-R2", Stock: 10, Warehouse: ledger.DefaultWarehouse},
		{Code: "A2", Name: "Guantes de nitrilo", Family: "EPP", Value: decimal.NewFromInt(12000), Currency: "COP", Unit: "par", Location: "E1-R3", Stock: 40, Warehouse: ledger.DefaultWarehouse},
		{Code: "B1", Name: "Cinta de señalización", Family: "Consumibles", Value: decimal.NewFromInt(8000), Currency: "COP", Unit: "rollo", Stock: 25, Warehouse: "Bodega Norte"},
	}
	for _, p := range demo {
		if _, err := book.AddProduct(p); err != nil {
			fmt.Fprintf(os.Stderr, "crear producto %s: %v\n", p.Code, err)
			os.Exit(1)
		}
	}

	fmt.Printf("store inicializado en %s (3 productos, 2 bodegas, usuario admin@almacen.local)\n", path)
}
