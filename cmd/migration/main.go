package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/carvasys/carvasys-api/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	// Criar conexão com o banco
	db, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Erro ao conectar com o banco de dados: %v", err)
	}
	defer db.Close()

	// Executar as migrações
	if err := runMigrations(db); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}

func runMigrations(db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	conn, err := db.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("erro ao obter conexão: %w", err)
	}
	defer conn.Release()

	if err := createMigrationsTable(ctx, conn); err != nil {
		return fmt.Errorf("erro ao criar tabela de migrações: %w", err)
	}

	lastMigration, err := getLastMigration(ctx, conn)
	if err != nil {
		return fmt.Errorf("erro ao verificar última migração: %w", err)
	}

	log.Printf("Última migração executada: %s", lastMigration)

	migrations := []migration{
		{
			version: "001_create_companies",
			up: `
				-- Tabela de empresas
				CREATE TABLE IF NOT EXISTS companies (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID UNIQUE NOT NULL,
					name VARCHAR(255) NOT NULL,
					status VARCHAR(20) NOT NULL,
					marketplace_type VARCHAR(50),
					rating DECIMAL(3,2),
					logo_url TEXT,
					foundation_date DATE,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_companies_status ON companies(status);
				CREATE INDEX IF NOT EXISTS idx_companies_uuid ON companies(uuid);
			`,
		},
		{
			version: "002_create_clients",
			up: `
				-- Tabela de clientes
				CREATE TABLE IF NOT EXISTS clients (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID UNIQUE NOT NULL,
					name VARCHAR(255) NOT NULL,
					document_type VARCHAR(10),
					document VARCHAR(20) UNIQUE,
					email VARCHAR(255),
					phone VARCHAR(20),
					active BOOLEAN NOT NULL DEFAULT true,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Vínculo cliente-empresa
				CREATE TABLE IF NOT EXISTS client_company (
					client_id BIGINT NOT NULL REFERENCES clients(id),
					company_id BIGINT NOT NULL REFERENCES companies(id),
					is_active BOOLEAN NOT NULL DEFAULT true,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL,
					PRIMARY KEY (client_id, company_id)
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_clients_document ON clients(document);
				CREATE INDEX IF NOT EXISTS idx_client_company_company_id ON client_company(company_id);
			`,
		},
		{
			version: "003_create_client_users",
			up: `
				-- Identidades de portal dos clientes
				CREATE TABLE IF NOT EXISTS client_users (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID UNIQUE NOT NULL,
					client_id BIGINT NOT NULL REFERENCES clients(id),
					email VARCHAR(255) UNIQUE NOT NULL,
					password VARCHAR(255) NOT NULL,
					document_type VARCHAR(10),
					document_number VARCHAR(20),
					last_login_at TIMESTAMP,
					login_attempts INTEGER NOT NULL DEFAULT 0,
					locked_until TIMESTAMP,
					preferences JSONB,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_client_users_client_id ON client_users(client_id);
				CREATE INDEX IF NOT EXISTS idx_client_users_email ON client_users(email);
			`,
		},
		{
			version: "004_create_product_categories",
			up: `
				-- Tabela de categorias de produtos
				CREATE TABLE IF NOT EXISTS product_categories (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID UNIQUE NOT NULL,
					company_id BIGINT NOT NULL REFERENCES companies(id),
					name VARCHAR(255) NOT NULL,
					active BOOLEAN NOT NULL DEFAULT true,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL,
					UNIQUE(company_id, name)
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_product_categories_company_id ON product_categories(company_id);
			`,
		},
		{
			version: "005_create_products",
			up: `
				-- Tabela de produtos
				CREATE TABLE IF NOT EXISTS products (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID UNIQUE NOT NULL,
					company_id BIGINT NOT NULL REFERENCES companies(id),
					category_id BIGINT REFERENCES product_categories(id),
					name VARCHAR(255) NOT NULL,
					description TEXT,
					amount DECIMAL(15,2) NOT NULL,
					discounts DECIMAL(15,2) NOT NULL DEFAULT 0,
					total_amount DECIMAL(15,2) NOT NULL,
					quantity DECIMAL(15,3) NOT NULL DEFAULT 0,
					image TEXT,
					active BOOLEAN NOT NULL DEFAULT true,
					is_for_favored BOOLEAN NOT NULL DEFAULT false,
					favored_price DECIMAL(15,2),
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_products_company_id ON products(company_id);
				CREATE INDEX IF NOT EXISTS idx_products_category_id ON products(category_id);
				CREATE INDEX IF NOT EXISTS idx_products_active ON products(active);
			`,
		},
		{
			version: "006_create_fees",
			up: `
				-- Tabela de taxas
				CREATE TABLE IF NOT EXISTS fees (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID UNIQUE NOT NULL,
					company_id BIGINT NOT NULL REFERENCES companies(id),
					description VARCHAR(255) NOT NULL,
					amount DECIMAL(15,2) NOT NULL,
					type VARCHAR(20) NOT NULL,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_fees_company_id ON fees(company_id);
			`,
		},
		{
			version: "007_create_transactions",
			up: `
				-- Vendas do ponto de venda
				CREATE TABLE IF NOT EXISTS transactions (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID UNIQUE NOT NULL,
					company_id BIGINT NOT NULL REFERENCES companies(id),
					product_id BIGINT REFERENCES products(id),
					fee_id BIGINT REFERENCES fees(id),
					client_id BIGINT REFERENCES clients(id),
					category_id BIGINT REFERENCES product_categories(id),
					name VARCHAR(255) NOT NULL,
					description TEXT,
					amount DECIMAL(15,2) NOT NULL,
					discounts DECIMAL(15,2) NOT NULL DEFAULT 0,
					fees DECIMAL(15,2) NOT NULL DEFAULT 0,
					total_amount DECIMAL(15,2) NOT NULL,
					quantity DECIMAL(15,3) NOT NULL DEFAULT 1,
					category_name VARCHAR(255),
					client_name VARCHAR(255),
					active BOOLEAN NOT NULL DEFAULT true,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_transactions_company_id ON transactions(company_id);
				CREATE INDEX IF NOT EXISTS idx_transactions_client_id ON transactions(client_id);
				CREATE INDEX IF NOT EXISTS idx_transactions_created_at ON transactions(created_at);
			`,
		},
		{
			version: "008_create_orders",
			up: `
				-- Tabela de pedidos
				CREATE TABLE IF NOT EXISTS orders (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID UNIQUE NOT NULL,
					company_id BIGINT NOT NULL REFERENCES companies(id),
					client_id BIGINT NOT NULL REFERENCES clients(id),
					subtotal DECIMAL(15,2) NOT NULL,
					discount_amount DECIMAL(15,2) NOT NULL DEFAULT 0,
					fee_amount DECIMAL(15,2) NOT NULL DEFAULT 0,
					total_amount DECIMAL(15,2) NOT NULL,
					status VARCHAR(20) NOT NULL,
					notes TEXT,
					confirmed_at TIMESTAMP,
					shipped_at TIMESTAMP,
					delivered_at TIMESTAMP,
					cancelled_at TIMESTAMP,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Itens do pedido
				CREATE TABLE IF NOT EXISTS order_items (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID UNIQUE NOT NULL,
					order_id BIGINT NOT NULL REFERENCES orders(id),
					product_id BIGINT NOT NULL REFERENCES products(id),
					product_name VARCHAR(255) NOT NULL,
					quantity DECIMAL(15,3) NOT NULL,
					unit_price DECIMAL(15,2) NOT NULL,
					discount_percent DECIMAL(5,2) NOT NULL DEFAULT 0,
					discount_amount DECIMAL(15,2) NOT NULL DEFAULT 0,
					total_amount DECIMAL(15,2) NOT NULL,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_orders_company_id ON orders(company_id);
				CREATE INDEX IF NOT EXISTS idx_orders_client_id ON orders(client_id);
				CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
				CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
			`,
		},
		{
			version: "009_create_favored_transactions",
			up: `
				-- Livro de fiado
				CREATE TABLE IF NOT EXISTS favored_transactions (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID UNIQUE NOT NULL,
					company_id BIGINT NOT NULL REFERENCES companies(id),
					client_id BIGINT NOT NULL REFERENCES clients(id),
					product_id BIGINT REFERENCES products(id),
					category_id BIGINT REFERENCES product_categories(id),
					name VARCHAR(255) NOT NULL,
					description TEXT,
					amount DECIMAL(15,2) NOT NULL,
					discounts DECIMAL(15,2) NOT NULL DEFAULT 0,
					total_amount DECIMAL(15,2) NOT NULL,
					favored_total DECIMAL(15,2) NOT NULL,
					favored_paid_amount DECIMAL(15,2) NOT NULL DEFAULT 0,
					quantity DECIMAL(15,3) NOT NULL DEFAULT 1,
					image TEXT,
					due_date TIMESTAMP,
					active BOOLEAN NOT NULL DEFAULT true,
					category_name VARCHAR(255),
					client_name VARCHAR(255),
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_favored_transactions_company_id ON favored_transactions(company_id);
				CREATE INDEX IF NOT EXISTS idx_favored_transactions_client_id ON favored_transactions(client_id);
				CREATE INDEX IF NOT EXISTS idx_favored_transactions_due_date ON favored_transactions(due_date);
			`,
		},
		{
			version: "010_create_notifications",
			up: `
				-- Notificações dos usuários de portal
				CREATE TABLE IF NOT EXISTS notifications (
					id BIGSERIAL PRIMARY KEY,
					uuid UUID UNIQUE NOT NULL,
					client_user_id BIGINT NOT NULL REFERENCES client_users(id),
					company_id BIGINT REFERENCES companies(id),
					type VARCHAR(50) NOT NULL,
					title VARCHAR(255) NOT NULL,
					message TEXT NOT NULL,
					action_url TEXT,
					read_at TIMESTAMP,
					created_at TIMESTAMP NOT NULL,
					updated_at TIMESTAMP NOT NULL
				);

				-- Índices
				CREATE INDEX IF NOT EXISTS idx_notifications_client_user_id ON notifications(client_user_id);
				CREATE INDEX IF NOT EXISTS idx_notifications_read_at ON notifications(read_at);
			`,
		},
	}

	for _, m := range migrations {
		if m.version <= lastMigration {
			log.Printf("Pulando migração %s (já executada)", m.version)
			continue
		}

		log.Printf("Executando migração %s", m.version)

		tx, err := conn.Begin(ctx)
		if err != nil {
			return fmt.Errorf("erro ao iniciar transação: %w", err)
		}

		_, err = tx.Exec(ctx, m.up)
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Printf("Erro ao fazer rollback: %v", rbErr)
			}
			return fmt.Errorf("erro ao executar migração %s: %w", m.version, err)
		}

		_, err = tx.Exec(ctx,
			"INSERT INTO migrations (version, executed_at) VALUES ($1, $2)",
			m.version, time.Now())
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				log.Printf("Erro ao fazer rollback: %v", rbErr)
			}
			return fmt.Errorf("erro ao registrar migração %s: %w", m.version, err)
		}

		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("erro ao fazer commit da migração %s: %w", m.version, err)
		}

		log.Printf("Migração %s executada com sucesso", m.version)
	}

	return nil
}

func createMigrationsTable(ctx context.Context, conn *pgxpool.Conn) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version VARCHAR(100) PRIMARY KEY,
			executed_at TIMESTAMP NOT NULL
		)
	`
	_, err := conn.Exec(ctx, query)
	return err
}

func getLastMigration(ctx context.Context, conn *pgxpool.Conn) (string, error) {
	var version string
	err := conn.QueryRow(ctx,
		"SELECT version FROM migrations ORDER BY executed_at DESC LIMIT 1").Scan(&version)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil
		}
		return "", err
	}
	return version, nil
}

type migration struct {
	version string
	up      string
}
