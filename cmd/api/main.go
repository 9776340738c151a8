package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/carvasys/carvasys-api/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	// Aplicar migrações na subida quando configurado (deploys com um
	// único processo, sem o binário cmd/migration)
	if os.Getenv("MIGRATE_ON_START") == "true" {
		if err := database.RunMigrations(); err != nil {
			log.Fatalf("Erro ao aplicar migrações: %v", err)
		}
	}

	// Criar aplicação
	app, err := NewApp()
	if err != nil {
		log.Fatalf("Erro ao inicializar a aplicação: %v", err)
	}
	defer app.Close()

	// Iniciar o servidor
	if err := app.Start(); err != nil {
		log.Fatalf("Erro ao iniciar o servidor: %v", err)
	}
}
